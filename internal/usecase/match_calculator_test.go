package usecase

import (
	"reflect"
	"testing"

	"github.com/pantrylens/backend/internal/domain"
)

func TestComputeMatch(t *testing.T) {
	tests := []struct {
		name        string
		ingredients []domain.RecipeIngredient
		owned       domain.TagSet
		want        domain.MatchResult
	}{
		{
			name:        "empty ingredient list",
			ingredients: nil,
			owned:       domain.NewTagSet("ui"),
			want:        domain.MatchResult{Percentage: 0, Missing: []string{}},
		},
		{
			name: "all ingredients untagged",
			ingredients: []domain.RecipeIngredient{
				{Name: "geheim ingredient"},
				{Name: "nog iets"},
			},
			owned: domain.NewTagSet("ui", "zout"),
			want:  domain.MatchResult{Percentage: 0, Missing: []string{}},
		},
		{
			name: "half owned",
			ingredients: []domain.RecipeIngredient{
				{Name: "ui", Tag: "ui"},
				{Name: "zout", Tag: "zout"},
			},
			owned: domain.NewTagSet("ui"),
			want:  domain.MatchResult{Percentage: 50, Missing: []string{"zout"}},
		},
		{
			name: "everything owned",
			ingredients: []domain.RecipeIngredient{
				{Name: "ui", Tag: "ui"},
				{Name: "knoflook", Tag: "knoflook"},
			},
			owned: domain.NewTagSet("ui", "knoflook", "zout"),
			want:  domain.MatchResult{Percentage: 100, Missing: []string{}},
		},
		{
			name: "untagged ingredient counts in neither side",
			ingredients: []domain.RecipeIngredient{
				{Name: "ui", Tag: "ui"},
				{Name: "vers gesneden bieslook"},
				{Name: "zout", Tag: "zout"},
			},
			owned: domain.NewTagSet("ui"),
			want:  domain.MatchResult{Percentage: 50, Missing: []string{"zout"}},
		},
		{
			name: "percentage rounds to nearest integer",
			ingredients: []domain.RecipeIngredient{
				{Name: "ui", Tag: "ui"},
				{Name: "zout", Tag: "zout"},
				{Name: "peper", Tag: "peper"},
			},
			owned: domain.NewTagSet("ui", "zout"),
			want:  domain.MatchResult{Percentage: 67, Missing: []string{"peper"}},
		},
		{
			name: "nothing owned",
			ingredients: []domain.RecipeIngredient{
				{Name: "Verse zalm", Tag: "zalm"},
			},
			owned: domain.NewTagSet(),
			want:  domain.MatchResult{Percentage: 0, Missing: []string{"Verse zalm"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMatch(tt.ingredients, tt.owned)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ComputeMatch() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeMatch_StaplesSatisfyLikeInventory(t *testing.T) {
	ingredients := []domain.RecipeIngredient{
		{Name: "olijfolie", Tag: "olijfolie"},
		{Name: "zout", Tag: "zout"},
	}

	inventory := domain.NewTagSet("olijfolie")
	staples := domain.NewTagSet("zout")

	got := ComputeMatch(ingredients, inventory.Union(staples))
	if got.Percentage != 100 || len(got.Missing) != 0 {
		t.Errorf("ComputeMatch() = %+v, want 100%% with nothing missing", got)
	}
}
