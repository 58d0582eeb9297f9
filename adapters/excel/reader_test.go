package excel

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestReadRosterCSV(t *testing.T) {
	path := writeTempCSV(t, `name,position,harshness,syllables,is_contract_year,outcome
Nick Chubb,RB,75,2,yes,88.5
Tua Tagovailoa,QB,40,6,false,61
`)

	entities, outcomes, err := NewRosterReader(path).ReadRoster()
	if err != nil {
		t.Fatalf("Expected clean read, got error: %v", err)
	}
	if len(entities) != 2 {
		t.Fatalf("Expected 2 entities, got %d", len(entities))
	}

	first := entities[0]
	if first.Name != "Nick Chubb" {
		t.Errorf("Expected name Nick Chubb, got %s", first.Name)
	}
	if first.Position != "RB" {
		t.Errorf("Expected position RB, got %s", first.Position)
	}
	if first.Linguistic.Harshness != 75 {
		t.Errorf("Expected harshness 75, got %f", first.Linguistic.Harshness)
	}
	if first.Linguistic.Syllables != 2 {
		t.Errorf("Expected 2 syllables, got %f", first.Linguistic.Syllables)
	}
	if !first.IsContractYear {
		t.Error("Expected contract year flag from yes")
	}
	if entities[1].IsContractYear {
		t.Error("Expected contract year false from false")
	}

	if len(outcomes) != 2 {
		t.Fatalf("Expected 2 outcomes, got %d", len(outcomes))
	}
	if outcomes[0] != 88.5 || outcomes[1] != 61 {
		t.Errorf("Expected outcomes [88.5 61], got %v", outcomes)
	}
}

func TestReadRosterWithoutOutcomeColumn(t *testing.T) {
	path := writeTempCSV(t, `name,position
Derrick Henry,RB
`)

	entities, outcomes, err := NewRosterReader(path).ReadRoster()
	if err != nil {
		t.Fatalf("Expected clean read, got error: %v", err)
	}
	if len(entities) != 1 {
		t.Fatalf("Expected 1 entity, got %d", len(entities))
	}
	if outcomes != nil {
		t.Errorf("Expected nil outcomes without the column, got %v", outcomes)
	}
}

func TestReadRosterSkipsBlankNames(t *testing.T) {
	path := writeTempCSV(t, `name,harshness
Nick Chubb,75
   ,50
Derrick Henry,70
`)

	entities, _, err := NewRosterReader(path).ReadRoster()
	if err != nil {
		t.Fatalf("Expected clean read, got error: %v", err)
	}
	if len(entities) != 2 {
		t.Errorf("Expected blank-name rows to be skipped, got %d entities", len(entities))
	}
}

func TestReadRosterErrors(t *testing.T) {
	if _, _, err := NewRosterReader("/nonexistent/roster.csv").ReadRoster(); err == nil {
		t.Error("Expected error for missing file")
	}

	noName := writeTempCSV(t, `position,harshness
RB,75
`)
	if _, _, err := NewRosterReader(noName).ReadRoster(); err == nil {
		t.Error("Expected error when the name column is missing")
	}

	headerOnly := writeTempCSV(t, "name,position\n")
	if _, _, err := NewRosterReader(headerOnly).ReadRoster(); err == nil {
		t.Error("Expected error for a roster with no data rows")
	}
}

func TestReaderFileTypeDetection(t *testing.T) {
	if NewRosterReader("roster.CSV").fileType != "csv" {
		t.Error("Expected csv detection to be case-insensitive")
	}
	if NewRosterReader("roster.xlsx").fileType != "xlsx" {
		t.Error("Expected xlsx for Excel files")
	}
}
