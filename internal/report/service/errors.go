package service

import (
	"errors"
	"fmt"
)

// ErrParse — буфер не декодируется как книга или в книге нет листов.
var ErrParse = errors.New("cannot parse workbook")

// ParseError несёт исходную ошибку декодера.
type ParseError struct {
	Name string // имя файла, если известно
	Err  error
}

func (e *ParseError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s: %v", ErrParse, e.Name, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrParse, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }
