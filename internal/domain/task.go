package domain

// TaskType groups tasks by how they are satisfied
type TaskType string

const (
	TaskTypeReferral TaskType = "referral"
	TaskTypeSocial   TaskType = "social"
	TaskTypeAction   TaskType = "action"
)

// TaskDefinition is a rewardable one-shot task
type TaskDefinition struct {
	ID          string   `json:"id" yaml:"id" validate:"required,max=64"`
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Reward      int64    `json:"reward" yaml:"reward" validate:"gte=0"`
	Type        TaskType `json:"type" yaml:"type" validate:"oneof=referral social action"`
	Requirement int64    `json:"requirement,omitempty" yaml:"requirement,omitempty" validate:"gte=0"`
	Link        string   `json:"link,omitempty" yaml:"link,omitempty"`
}

// TaskStatus is a task as seen by a specific player
type TaskStatus struct {
	Task      TaskDefinition `json:"task"`
	Completed bool           `json:"completed"`
	Claimable bool           `json:"claimable"`
}
