package server

import (
	"testing"

	"plantillas-crud-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Port:        "8080",
		LogLevel:    "warn",
		Timezone:    "America/Bogota",
		Database: config.DatabaseConfig{
			Scheme:     config.SchemeStandard,
			Host:       "localhost",
			Port:       "27017",
			Name:       "plantillas_test",
			Collection: config.CollectionName,
		},
	}
}

// TestNewContainer verifies that the container can be created successfully
func TestNewContainer(t *testing.T) {
	container, err := NewContainer(testConfig())
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}

	if container.Connector == nil {
		t.Error("Connector is nil")
	}
	if container.Validator == nil {
		t.Error("Validator is nil")
	}
	if container.Formatter == nil {
		t.Error("Formatter is nil")
	}
	if container.PlantillaHandler == nil {
		t.Error("PlantillaHandler is nil")
	}
	if got := container.Validator.Location().String(); got != "America/Bogota" {
		t.Errorf("Expected validator timezone America/Bogota, got %s", got)
	}
}

func TestNewContainer_RequiresConfig(t *testing.T) {
	if _, err := NewContainer(nil); err == nil {
		t.Error("Expected error for nil configuration")
	}

	if _, err := NewContainerWithConnector(testConfig(), nil, nil); err == nil {
		t.Error("Expected error for nil connector")
	}
}
