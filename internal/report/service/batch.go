package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"station-report/internal/report/model"
)

type Upload struct {
	Name string
	Data []byte
}

type Outcome struct {
	Name   string
	Report model.Report
	Err    error
}

// ExtractAll разбирает файлы параллельно (не больше workers одновременно).
// Файлы независимы: ошибка одного не останавливает остальные; отмена ctx —
// останавливает ещё не начатые, их Err = ctx.Err().
func (e *Extractor) ExtractAll(ctx context.Context, uploads []Upload, workers int) []Outcome {
	out := make([]Outcome, len(uploads))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, u := range uploads {
		out[i].Name = u.Name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				out[i].Err = err
				return nil
			}
			rep, err := e.Extract(u.Data)
			if err != nil {
				var pe *ParseError
				if errors.As(err, &pe) {
					pe.Name = u.Name
				}
				out[i].Err = err
				return nil
			}
			out[i].Report = rep
			return nil
		})
	}
	_ = g.Wait()
	return out
}
