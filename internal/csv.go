package internal

import "io"

type CSVService interface {
	CsvToEntities(file io.Reader,
		entityMapper func(record []string) (interface{}, error)) ([]interface{}, error)
}
