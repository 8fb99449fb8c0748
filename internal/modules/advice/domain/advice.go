package domain

type Kind string

const (
	KindSuccess Kind = "success"
	KindEmpty   Kind = "empty"
	KindFailure Kind = "failure"
)

const (
	FallbackText = "No advice found..."
	FailureText  = "Could not fetch advice. Check your connection and try again."
)

// Result is what one fetch produced. Empty and Failure are kept apart so the
// caller can show a different message for each.
type Result struct {
	Kind Kind
	Text string
}

func Success(text string) Result { return Result{Kind: KindSuccess, Text: text} }
func Empty() Result              { return Result{Kind: KindEmpty, Text: FallbackText} }
func Failure() Result            { return Result{Kind: KindFailure, Text: FailureText} }
