package usecase

import (
	"context"

	preferencesin "studylog/internal/modules/preferences/port/in"
	sessionin "studylog/internal/modules/session/port/in"
	"studylog/internal/modules/stats/domain"
	statsdto "studylog/internal/modules/stats/dto"
	statsin "studylog/internal/modules/stats/port/in"
	"studylog/internal/platform/clock"
)

// Interactor derives every figure from the current session list on each
// call; nothing is cached.
type Interactor struct {
	clock    clock.Clock
	sessions sessionin.Usecase
	prefs    preferencesin.Usecase
}

func NewInteractor(clock clock.Clock, sessions sessionin.Usecase, prefs preferencesin.Usecase) statsin.Usecase {
	return &Interactor{clock: clock, sessions: sessions, prefs: prefs}
}

func (i *Interactor) Summary(ctx context.Context) (statsdto.SummaryOutput, error) {
	sessions, err := i.sessions.List(ctx)
	if err != nil {
		return statsdto.SummaryOutput{}, err
	}
	entries := make([]domain.Entry, 0, len(sessions))
	for _, s := range sessions {
		entries = append(entries, domain.Entry{Subject: s.Subject, Minutes: s.Minutes, Timestamp: s.Date})
	}

	goal := 0
	if i.prefs != nil {
		goal = i.prefs.Load(ctx).WeeklyGoal
	}
	last7 := domain.Last7DaysMinutes(entries, i.clock.Now())
	top, hasTop := domain.TopSubject(entries)

	grouped := domain.MinutesBySubject(entries)
	bySubject := make([]statsdto.SubjectMinutesOutput, 0, len(grouped))
	for _, g := range grouped {
		bySubject = append(bySubject, statsdto.SubjectMinutesOutput{Subject: g.Subject, Minutes: g.Minutes})
	}

	return statsdto.SummaryOutput{
		SessionCount:     len(entries),
		TotalMinutes:     domain.TotalMinutes(entries),
		Last7DaysMinutes: last7,
		WeeklyGoal:       goal,
		Progress:         domain.Progress(last7, goal),
		TopSubject:       top,
		HasTop:           hasTop,
		BySubject:        bySubject,
	}, nil
}
