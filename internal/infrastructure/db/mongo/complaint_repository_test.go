package mongo

import (
	"testing"

	"github.com/gramsetu/complaints-api/internal/core/domain"
)

func TestScopedFilter(t *testing.T) {
	owned := scopedFilter(domain.ScopeOwnedOnly, "user_1", "c-1")
	if owned["_id"] != "c-1" {
		t.Errorf("_id: expected c-1, got %v", owned["_id"])
	}
	if owned["user_id"] != "user_1" {
		t.Errorf("owned scope must pin user_id, got %v", owned["user_id"])
	}

	all := scopedFilter(domain.ScopeAll, "officer_1", "c-1")
	if all["_id"] != "c-1" {
		t.Errorf("_id: expected c-1, got %v", all["_id"])
	}
	if _, ok := all["user_id"]; ok {
		t.Error("ScopeAll must not restrict by user_id")
	}
}
