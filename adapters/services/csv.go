package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sync"
)

var (
	csvServiceInstance *csvService
	once               sync.Once
)

type csvService struct{}

func NewCSVService() *csvService {
	once.Do(func() {
		csvServiceInstance = &csvService{}
	})
	return csvServiceInstance
}

// CsvToEntities skips the header row and maps every other record with
// entityMapper. The first failing record aborts the whole file.
func (c *csvService) CsvToEntities(file io.Reader,
	entityMapper func(record []string) (interface{}, error)) ([]interface{}, error) {
	csvReader := csv.NewReader(file)
	csvReader.TrimLeadingSpace = true

	// Skip header
	if _, err := csvReader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty CSV file")
		}
		return nil, err
	}

	var entityList []interface{}
	for line := 2; ; line++ {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		entity, err := entityMapper(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entityList = append(entityList, entity)
	}

	return entityList, nil
}
