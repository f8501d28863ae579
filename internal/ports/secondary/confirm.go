package secondary

// Confirmer defines the secondary port for destructive-action
// confirmation. The call blocks until the user answers.
type Confirmer interface {
	// Confirm asks the user a yes/no question and reports the answer.
	Confirm(prompt string) bool
}
