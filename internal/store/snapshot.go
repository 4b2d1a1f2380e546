package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/axon-labs/axon/ent"
	"github.com/axon-labs/axon/ent/graphsnapshot"
	"github.com/axon-labs/axon/internal/neurograph"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Load(ctx context.Context, sessionKey string) (*GraphSnapshot, error) {
	s, err := r.client.GraphSnapshot.Query().
		Where(graphsnapshot.SessionKey(sessionKey)).
		Order(ent.Desc(graphsnapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return entSnapshotToGraphSnapshot(s)
}

func (r *snapshotRepo) Save(ctx context.Context, sessionKey string, sequence int64, g neurograph.Graph) error {
	dataMap, err := graphToMap(g)
	if err != nil {
		return fmt.Errorf("marshal graph: %w", err)
	}

	_, err = r.client.GraphSnapshot.Create().
		SetSessionKey(sessionKey).
		SetSequence(sequence).
		SetTimestamp(time.Now().UTC()).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("session %q sequence %d: %w", sessionKey, sequence, ErrSequenceConflict)
		}
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Prune(ctx context.Context, sessionKey string, keep int) error {
	// Find the sequence threshold: the Nth most recent snapshot.
	snapshots, err := r.client.GraphSnapshot.Query().
		Where(graphsnapshot.SessionKey(sessionKey)).
		Order(ent.Desc(graphsnapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Sequence
	_, err = r.client.GraphSnapshot.Delete().
		Where(
			graphsnapshot.SessionKey(sessionKey),
			graphsnapshot.SequenceLTE(threshold),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// graphToMap converts a Graph to map[string]any for ent JSON storage.
func graphToMap(g neurograph.Graph) (map[string]any, error) {
	b, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entSnapshotToGraphSnapshot converts an ent GraphSnapshot to a store GraphSnapshot.
func entSnapshotToGraphSnapshot(s *ent.GraphSnapshot) (*GraphSnapshot, error) {
	b, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	var g neurograph.Graph
	if err := json.Unmarshal(b, &g); err != nil {
		return nil, fmt.Errorf("unmarshal graph: %w", err)
	}
	return &GraphSnapshot{
		ID:         s.ID,
		SessionKey: s.SessionKey,
		Sequence:   s.Sequence,
		Timestamp:  s.Timestamp,
		Graph:      g,
	}, nil
}
