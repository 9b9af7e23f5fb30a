package publish

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionUpload copies a local container to the bucket.
	ActionUpload ActionType = "upload"
	// ActionPrune removes a remote object with no local counterpart.
	ActionPrune ActionType = "prune"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the object name inside the bucket.
	Key string `json:"key"`

	// Path is the local file behind an upload.
	Path string `json:"path,omitempty"`

	// Size is the local file size in bytes, for uploads.
	Size int64 `json:"size,omitempty"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// Summary provides aggregate statistics for a publish plan.
type Summary struct {
	// LocalFiles is the number of publishable files found locally.
	LocalFiles int `json:"local_files"`

	// RemoteObjects is the number of objects under the bucket prefix.
	RemoteObjects int `json:"remote_objects"`

	// Uploads counts planned upload actions.
	Uploads int `json:"uploads"`

	// Prunes counts planned prune (delete) actions.
	Prunes int `json:"prunes"`

	// UpToDate counts local files whose remote copy already matches.
	UpToDate int `json:"up_to_date"`
}

// Plan contains the planned actions for one publish run.
type Plan struct {
	// Actions contains planned mutation operations, uploads first.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Options controls publish behavior.
type Options struct {
	// Prune enables deletion of remote objects missing locally.
	Prune bool

	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Confirmed indicates user has confirmed destructive actions.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool
}
