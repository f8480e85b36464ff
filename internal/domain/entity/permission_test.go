package entity_test

import (
	"testing"
	"time"

	"github.com/bnema/scanclip/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestPermissionState_Constants(t *testing.T) {
	tests := []struct {
		state    entity.PermissionState
		expected string
	}{
		{entity.PermissionUnknown, "unknown"},
		{entity.PermissionDenied, "denied"},
		{entity.PermissionGranted, "granted"},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.state))
		})
	}
}

func TestParsePermissionState(t *testing.T) {
	tests := []struct {
		input    string
		expected entity.PermissionState
	}{
		{"granted", entity.PermissionGranted},
		{"denied", entity.PermissionDenied},
		{"unknown", entity.PermissionUnknown},
		{"prompt", entity.PermissionUnknown},
		{"", entity.PermissionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, entity.ParsePermissionState(tt.input))
		})
	}
}

func TestPermissionRecord_IsGrantedIsDenied(t *testing.T) {
	tests := []struct {
		name    string
		state   entity.PermissionState
		granted bool
		denied  bool
	}{
		{"granted", entity.PermissionGranted, true, false},
		{"denied", entity.PermissionDenied, false, true},
		{"unknown", entity.PermissionUnknown, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &entity.PermissionRecord{
				Type:      entity.PermissionTypeCamera,
				State:     tt.state,
				UpdatedAt: time.Now(),
			}
			assert.Equal(t, tt.granted, record.IsGranted())
			assert.Equal(t, tt.denied, record.IsDenied())
		})
	}
}
