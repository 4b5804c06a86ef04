// package service implements the mutation pipelines and read-side projections
// over the entity store. Each pipeline applies its primary mutation, recomputes
// the derived fields it invalidated, refreshes every embedded snapshot of the
// mutated user and emits the notifications the mutation triggers, all inside a
// single sequenced step.
package service

import (
	"context"
	"log/slog"

	"github.com/linguanexus/nexus-service/internal/repository"
)

// BaseService carries the dependencies every pipeline needs: the sequencer
// that serializes mutations and the logger.
type BaseService struct {
	seq repository.Sequencer
	log *slog.Logger
}

func NewBaseService(seq repository.Sequencer, log *slog.Logger) BaseService {
	return BaseService{
		seq: seq,
		log: log,
	}
}

// pipeline runs fn as one atomic mutation from the caller's point of view:
// no other pipeline can interleave with it.
func (s *BaseService) pipeline(ctx context.Context, fn func() error) error {
	return s.seq.Do(ctx, fn)
}
