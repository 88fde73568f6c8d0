package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/quorum/internal/app"
	"github.com/alexanderramin/quorum/internal/domain"
	"github.com/alexanderramin/quorum/internal/repository"
	"github.com/alexanderramin/quorum/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededDirectory(t *testing.T) *Directory {
	t.Helper()
	repo := repository.NewMemoryPersonRepo()
	mustCreatePeople(t, repo,
		testutil.NewTestPerson("Ada", testutil.WithPersonID("ada"), testutil.WithTeam("Design")),
		testutil.NewTestPerson("Bo", testutil.WithPersonID("bo"), testutil.WithRole(domain.RoleTeamLead), testutil.WithTeam("Design")),
		testutil.NewTestPerson("Cy", testutil.WithPersonID("cy"), testutil.WithRole(domain.RolePresident), testutil.WithTeam("Management")),
		testutil.NewTestPerson("Di", testutil.WithPersonID("di"), testutil.WithRole(domain.RoleMaster), testutil.WithTeam("Design")),
	)
	return NewDirectory(repo)
}

func ids(people []*domain.Person) []string {
	out := make([]string, len(people))
	for i, p := range people {
		out[i] = p.ID
	}
	return out
}

func TestDirectory_GetPerson(t *testing.T) {
	dir := seededDirectory(t)
	ctx := context.Background()

	p, err := dir.GetPerson(ctx, "cy")
	require.NoError(t, err)
	assert.Equal(t, domain.RolePresident, p.Role)

	_, err = dir.GetPerson(ctx, "nobody")
	assert.ErrorIs(t, err, app.ErrPersonNotFound)
}

func TestDirectory_RoleFacts(t *testing.T) {
	dir := seededDirectory(t)

	assert.Equal(t, 1, dir.RolePriority(domain.RolePresident))
	assert.Equal(t, 8, dir.RolePriority(domain.RoleContributor))
	assert.Equal(t, 10.0, dir.RoleWeight(domain.RolePresident))
	assert.Equal(t, 1.0, dir.RoleWeight(domain.RoleCA))
	assert.True(t, dir.IsExecutive(domain.RoleMaster))
	assert.False(t, dir.IsExecutive(domain.RoleTeamLead))
	assert.True(t, dir.IsLeader(domain.RoleTeamLead))
	assert.False(t, dir.IsLeader(domain.RoleContributor))
}

func TestDirectory_ListPeopleMostSeniorFirst(t *testing.T) {
	dir := seededDirectory(t)

	people, err := dir.ListPeople(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"cy", "di", "bo", "ada"}, ids(people))
}

func TestDirectory_Listings(t *testing.T) {
	dir := seededDirectory(t)
	ctx := context.Background()

	team, err := dir.ListTeam(ctx, "Design")
	require.NoError(t, err)
	assert.Equal(t, []string{"di", "bo", "ada"}, ids(team))

	teams, err := dir.ListTeams(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Design", "Management"}, teams)

	execs, err := dir.ListExecutives(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cy", "di"}, ids(execs))

	leaders, err := dir.ListLeaders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cy", "di", "bo"}, ids(leaders))

	contributors, err := dir.ListByRole(ctx, domain.RoleContributor)
	require.NoError(t, err)
	assert.Equal(t, []string{"ada"}, ids(contributors))

	found, err := dir.SearchByName(ctx, "d")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ada", "di"}, ids(found))
}

func TestPersonService_Add(t *testing.T) {
	_, people, _ := setupRepos(t)
	svc := NewPersonService(people)
	ctx := context.Background()

	p := &domain.Person{Name: "  Eve  ", Role: "VP"}
	require.NoError(t, svc.Add(ctx, p))
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Eve", p.Name)
	assert.Equal(t, domain.RoleVicePresident, p.Role)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Eve", got.Name)

	assert.Error(t, svc.Add(ctx, &domain.Person{Name: ""}))
	assert.Error(t, svc.Add(ctx, &domain.Person{Name: "X", Role: "intern"}))

	require.NoError(t, svc.Delete(ctx, p.ID))
	_, err = svc.Get(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
