package dto

type AdviceOutput struct {
	Kind string
	Text string
}

func (o AdviceOutput) Failed() bool { return o.Kind == "failure" }
