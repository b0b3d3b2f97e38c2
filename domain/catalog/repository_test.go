package catalog_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/vander-supa3/academia-nutricional/domain/catalog"
	"github.com/vander-supa3/academia-nutricional/internal/testutil"
	"github.com/vander-supa3/academia-nutricional/pkg/apperror"
)

func seedCatalog(t *testing.T, db *bun.DB) (repo *catalog.Repository, workoutID string) {
	t.Helper()
	ctx := context.Background()

	recipes := []catalog.Recipe{
		{ID: uuid.New().String(), Title: "Omelete + banana", MealType: catalog.MealBreakfast, Kcal: 350, Cheap: true},
		{ID: uuid.New().String(), Title: "Cuscuz com ovo", MealType: catalog.MealBreakfast, Kcal: 420, Cheap: true},
		{ID: uuid.New().String(), Title: "Panqueca proteica premium", MealType: catalog.MealBreakfast, Kcal: 390, Cheap: false},
		{ID: uuid.New().String(), Title: "Arroz + feijão + frango + salada", MealType: catalog.MealLunch, Kcal: 550, Cheap: true},
	}
	for i := range recipes {
		_, err := db.NewInsert().Model(&recipes[i]).Exec(ctx)
		require.NoError(t, err)
	}

	workoutID = uuid.New().String()
	workouts := []catalog.Workout{
		{ID: workoutID, Title: "HIIT 20 min — Fullbody", Focus: "Fullbody", Minutes: 20},
		{ID: uuid.New().String(), Title: "Treino 15 min — Pernas", Focus: "Pernas + Abdômen", Minutes: 15},
		{ID: uuid.New().String(), Title: "Circuito 25 min — Fullbody", Focus: "Fullbody", Minutes: 25},
	}
	for i := range workouts {
		_, err := db.NewInsert().Model(&workouts[i]).Exec(ctx)
		require.NoError(t, err)
	}

	exercises := []catalog.WorkoutExercise{
		{ID: uuid.New().String(), WorkoutID: workoutID, Name: "Burpee leve", Seconds: 60, OrderIndex: 3},
		{ID: uuid.New().String(), WorkoutID: workoutID, Name: "Polichinelo", Seconds: 45, OrderIndex: 1},
		{ID: uuid.New().String(), WorkoutID: workoutID, Name: "Agachamento", Seconds: 45, OrderIndex: 2},
	}
	for i := range exercises {
		_, err := db.NewInsert().Model(&exercises[i]).Exec(ctx)
		require.NoError(t, err)
	}

	return catalog.NewRepository(db, testutil.Logger()), workoutID
}

func TestSearchRecipes(t *testing.T) {
	repo, _ := seedCatalog(t, testutil.NewDB(t))
	ctx := context.Background()

	tests := []struct {
		name     string
		query    string
		mealType string
		want     int
	}{
		{"no filters", "", "", 4},
		{"meal type filter", "", catalog.MealBreakfast, 3},
		{"case-insensitive substring", "OMELETE", "", 1},
		{"substring plus meal type", "ovo", catalog.MealBreakfast, 1},
		{"no match", "pizza", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.SearchRecipes(ctx, tt.query, tt.mealType)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestSearchRecipesOrderedByTitle(t *testing.T) {
	repo, _ := seedCatalog(t, testutil.NewDB(t))

	got, err := repo.SearchRecipes(context.Background(), "", catalog.MealBreakfast)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Cuscuz com ovo", got[0].Title)
	assert.Equal(t, "Omelete + banana", got[1].Title)
	assert.Equal(t, "Panqueca proteica premium", got[2].Title)
}

func TestSearchWorkouts(t *testing.T) {
	repo, _ := seedCatalog(t, testutil.NewDB(t))
	ctx := context.Background()

	tests := []struct {
		name       string
		query      string
		focus      string
		minutesMax int
		want       int
	}{
		{"no filters", "", "", 0, 3},
		{"focus filter", "", "Fullbody", 0, 2},
		{"duration ceiling", "", "", 20, 2},
		{"focus plus ceiling", "", "Fullbody", 20, 1},
		{"title substring", "circuito", "", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.SearchWorkouts(ctx, tt.query, tt.focus, tt.minutesMax)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestGetWorkoutWithExercises(t *testing.T) {
	repo, workoutID := seedCatalog(t, testutil.NewDB(t))
	ctx := context.Background()

	workout, err := repo.GetWorkout(ctx, workoutID)
	require.NoError(t, err)
	assert.Equal(t, "HIIT 20 min — Fullbody", workout.Title)

	exercises, err := repo.ListExercises(ctx, workoutID)
	require.NoError(t, err)
	require.Len(t, exercises, 3)
	assert.Equal(t, "Polichinelo", exercises[0].Name)
	assert.Equal(t, "Agachamento", exercises[1].Name)
	assert.Equal(t, "Burpee leve", exercises[2].Name)
}

func TestGetWorkoutNotFound(t *testing.T) {
	repo, _ := seedCatalog(t, testutil.NewDB(t))

	_, err := repo.GetWorkout(context.Background(), uuid.New().String())
	require.Error(t, err)

	appErr, ok := err.(*apperror.Error)
	require.True(t, ok)
	assert.Equal(t, "not_found", appErr.Code)
}

func TestCheapRecipesByMealType(t *testing.T) {
	repo, _ := seedCatalog(t, testutil.NewDB(t))

	got, err := repo.CheapRecipesByMealType(context.Background(), catalog.MealBreakfast)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.True(t, r.Cheap)
	}
}
