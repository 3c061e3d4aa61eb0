package core

import "time"

// Checkpoint records the progress of a long-running maintenance job, such as
// re-embedding a namespace after a model change. Jobs persist a checkpoint
// after each batch so an interrupted run resumes where it stopped.
type Checkpoint struct {
	// Job identifies the job type, e.g. "reindex".
	Job string `json:"job"`

	// Namespace is the namespace the job is walking.
	Namespace Namespace `json:"namespace"`

	// LastID is the ID of the last document processed, in key order.
	LastID string `json:"last_id"`

	// Processed counts documents handled so far.
	Processed int `json:"processed"`

	// UpdatedAt is when the checkpoint was last saved.
	UpdatedAt time.Time `json:"updated_at"`
}
