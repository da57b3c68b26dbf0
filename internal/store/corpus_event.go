package store

import (
	"context"
	"fmt"

	"github.com/abhisek/riskdrill/ent"
	"github.com/abhisek/riskdrill/ent/corpusbuildevent"
)

func (r *eventRepo) AppendCorpusBuildEvent(ctx context.Context, data CorpusBuildEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CorpusBuildEvent.Create().
		SetSequence(seqNum).
		SetVersion(data.Version).
		SetSource(data.Source).
		SetRecordCount(data.RecordCount).
		SetChunkCount(data.ChunkCount).
		SetEmbeddingModel(data.EmbeddingModel).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save corpus build event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestCorpusBuild(ctx context.Context) (*CorpusBuild, error) {
	e, err := r.client.CorpusBuildEvent.Query().
		Order(ent.Desc(corpusbuildevent.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest corpus build: %w", err)
	}
	return &CorpusBuild{
		Timestamp:      e.Timestamp,
		Version:        e.Version,
		Source:         e.Source,
		RecordCount:    e.RecordCount,
		ChunkCount:     e.ChunkCount,
		EmbeddingModel: e.EmbeddingModel,
	}, nil
}
