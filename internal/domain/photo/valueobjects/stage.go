package valueobjects

import "fmt"

// WorkflowStage says which photos a job requires per TV.
type WorkflowStage string

const (
	StageBefore WorkflowStage = "before"
	StageAfter  WorkflowStage = "after"
	StageBoth   WorkflowStage = "both"
)

func (s WorkflowStage) String() string {
	return string(s)
}

func (s WorkflowStage) IsValid() bool {
	return s == StageBefore || s == StageAfter || s == StageBoth
}

func (s WorkflowStage) RequiresBefore() bool {
	return s == StageBefore || s == StageBoth
}

func (s WorkflowStage) RequiresAfter() bool {
	return s == StageAfter || s == StageBoth
}

// PhotosPerTV is the number of photos each TV contributes to the required total.
func (s WorkflowStage) PhotosPerTV() int {
	if s == StageBoth {
		return 2
	}
	return 1
}

// FirstType is where a fresh capture session starts.
func (s WorkflowStage) FirstType() PhotoType {
	if s == StageAfter {
		return TypeAfter
	}
	return TypeBefore
}

func NewWorkflowStage(s string) (WorkflowStage, error) {
	stage := WorkflowStage(s)
	if !stage.IsValid() {
		return "", fmt.Errorf("invalid workflow stage: %s", s)
	}
	return stage, nil
}
