//go:build unit

package response_test

import (
	"testing"

	response "webmall/internal/handler/dto/response"
	"webmall/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestFromCategoryTree(t *testing.T) {
	electronics := uuid.New()
	phones := uuid.New()
	laptops := uuid.New()
	fashion := uuid.New()
	missingParent := uuid.New()
	orphan := uuid.New()

	views := []*queries.CategoryView{
		{ID: phones, Name: "Phones", Slug: "phones", ParentID: &electronics},
		{ID: electronics, Name: "Electronics", Slug: "electronics"},
		{ID: laptops, Name: "Laptops", Slug: "laptops", ParentID: &electronics},
		{ID: fashion, Name: "Fashion", Slug: "fashion"},
		{ID: orphan, Name: "Orphan", Slug: "orphan", ParentID: &missingParent},
	}

	got := response.FromCategoryTree(views)

	want := []*response.CategoryResponse{
		{
			ID:   electronics,
			Name: "Electronics",
			Slug: "electronics",
			Children: []*response.CategoryResponse{
				{ID: phones, Name: "Phones", Slug: "phones", ParentID: &electronics},
				{ID: laptops, Name: "Laptops", Slug: "laptops", ParentID: &electronics},
			},
		},
		{ID: fashion, Name: "Fashion", Slug: "fashion"},
		// Orphans surface at top level instead of disappearing.
		{ID: orphan, Name: "Orphan", Slug: "orphan", ParentID: &missingParent},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("category tree mismatch (-want +got):\n%s", diff)
	}
}

func TestFromCategoryTreeEmpty(t *testing.T) {
	if got := response.FromCategoryTree(nil); len(got) != 0 {
		t.Errorf("expected empty tree, got %d roots", len(got))
	}
}
