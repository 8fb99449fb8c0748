package in

import (
	"context"
	"time"

	sessiondto "studylog/internal/modules/session/dto"
	sessionin "studylog/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, subject string, minutes int, topics string, date time.Time) (sessiondto.SessionOutput, error) {
	return h.usecase.Add(ctx, sessiondto.AddInput{Subject: subject, Minutes: minutes, Topics: topics, Date: date})
}

func (h CLIHandler) Update(ctx context.Context, id, subject string, minutes int, topics string, date time.Time) (sessiondto.SessionOutput, error) {
	return h.usecase.Update(ctx, sessiondto.UpdateInput{ID: id, Subject: subject, Minutes: minutes, Topics: topics, Date: date})
}

func (h CLIHandler) Remove(ctx context.Context, id string) error {
	return h.usecase.Remove(ctx, id)
}

func (h CLIHandler) Clear(ctx context.Context) error {
	return h.usecase.Clear(ctx)
}

func (h CLIHandler) Get(ctx context.Context, id string) (sessiondto.SessionOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) ListRecent(ctx context.Context) ([]sessiondto.SessionOutput, error) {
	return h.usecase.ListRecent(ctx)
}
