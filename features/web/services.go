package web

import (
	"scamurl/features/scanner"
)

type Services struct {
	Scanner *scanner.Scanner
}

func NewServices() (*Services, error) {
	sc, err := scanner.NewScanner()
	if err != nil {
		return nil, err
	}

	return &Services{
		Scanner: sc,
	}, nil
}
