// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	if CorrelationIDCtxKey.String() != "correlationID" {
		t.Errorf("expected 'correlationID', got '%s'", CorrelationIDCtxKey.String())
	}
}

func TestGetCorrelationIDFromContext_Success(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "abc")

	id, ok := GetCorrelationIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if id != "abc" {
		t.Errorf("expected 'abc', got '%s'", id)
	}
}

func TestGetCorrelationIDFromContext_Missing(t *testing.T) {
	if _, ok := GetCorrelationIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
	if _, ok := GetCorrelationIDFromContext(WithCorrelationID(context.Background(), "")); ok {
		t.Error("expected ok=false for empty id")
	}
}
