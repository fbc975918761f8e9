package accountservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/go-finbook/finbook/internal/domain"
	"github.com/go-finbook/finbook/pkg/apperrors"
	"github.com/go-finbook/finbook/pkg/either"
	"github.com/go-finbook/finbook/pkg/randompkg"
)

func randomUser() domain.User {
	return domain.NewUser(randompkg.Name(), randompkg.Email(), randompkg.String(60), randompkg.CPF())
}

func randomAccount(users ...domain.User) domain.Account {
	return domain.NewAccount(randompkg.Name(), users)
}

func TestCreate(t *testing.T) {
	t.Parallel()

	user1 := randomUser()
	user2 := randomUser()
	account := randomAccount(user1, user2)

	testCases := []struct {
		name          string
		arg           CreateParams
		buildStubs    func(repo *MockRepo, users *MockUserGetter)
		checkResponse func(t *testing.T, result either.Either[*apperrors.Error, domain.Account])
	}{
		{
			name: "OK",
			arg: CreateParams{
				Name:    account.Name,
				UserIDs: []string{user1.ID.String(), user2.ID.String()},
			},
			buildStubs: func(repo *MockRepo, users *MockUserGetter) {
				users.EXPECT().Get(gomock.Any(), gomock.Eq(user1.ID)).Times(1).Return(user1, nil)
				users.EXPECT().Get(gomock.Any(), gomock.Eq(user2.ID)).Times(1).Return(user2, nil)

				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(account, nil)

				repo.EXPECT().
					AddUser(gomock.Any(), gomock.Eq(account.ID), gomock.Eq(user1.ID)).
					Times(1).
					Return(nil)
				repo.EXPECT().
					AddUser(gomock.Any(), gomock.Eq(account.ID), gomock.Eq(user2.ID)).
					Times(1).
					Return(nil)
			},
			checkResponse: func(t *testing.T, result either.Either[*apperrors.Error, domain.Account]) {
				require.True(t, result.IsRight())
				require.Equal(t, account.Name, result.Right().Name)
				require.Len(t, result.Right().Users, 2)
			},
		},
		{
			name: "NoUsers",
			arg:  CreateParams{Name: account.Name},
			buildStubs: func(repo *MockRepo, users *MockUserGetter) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(randomAccount(), nil)
			},
			checkResponse: func(t *testing.T, result either.Either[*apperrors.Error, domain.Account]) {
				require.True(t, result.IsRight())
				require.Empty(t, result.Right().Users)
			},
		},
		{
			name: "UnknownUserAbortsBeforeWriting",
			arg: CreateParams{
				Name:    account.Name,
				UserIDs: []string{user1.ID.String(), user2.ID.String()},
			},
			buildStubs: func(repo *MockRepo, users *MockUserGetter) {
				users.EXPECT().
					Get(gomock.Any(), gomock.Eq(user1.ID)).
					Times(1).
					Return(domain.User{}, apperrors.NotFound("user", "id", user1.ID))

				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
				repo.EXPECT().AddUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, result either.Either[*apperrors.Error, domain.Account]) {
				require.True(t, result.IsWrong())
				require.Equal(t, apperrors.KindNotFound, result.Wrong().Kind())
			},
		},
		{
			name: "LinkFailure",
			arg: CreateParams{
				Name:    account.Name,
				UserIDs: []string{user1.ID.String()},
			},
			buildStubs: func(repo *MockRepo, users *MockUserGetter) {
				users.EXPECT().Get(gomock.Any(), gomock.Eq(user1.ID)).Times(1).Return(user1, nil)

				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(account, nil)

				repo.EXPECT().
					AddUser(gomock.Any(), gomock.Eq(account.ID), gomock.Eq(user1.ID)).
					Times(1).
					Return(apperrors.Unknown(nil))
			},
			checkResponse: func(t *testing.T, result either.Either[*apperrors.Error, domain.Account]) {
				require.True(t, result.IsWrong())
				require.Equal(t, apperrors.KindUnknown, result.Wrong().Kind())
			},
		},
		{
			name:       "MissingName",
			arg:        CreateParams{UserIDs: []string{user1.ID.String()}},
			buildStubs: func(repo *MockRepo, users *MockUserGetter) {},
			checkResponse: func(t *testing.T, result either.Either[*apperrors.Error, domain.Account]) {
				require.True(t, result.IsWrong())
				require.Equal(t, apperrors.KindValidation, result.Wrong().Kind())
				require.Contains(t, result.Wrong().Fields(), "name")
			},
		},
		{
			name:       "MalformedUserID",
			arg:        CreateParams{Name: account.Name, UserIDs: []string{"42"}},
			buildStubs: func(repo *MockRepo, users *MockUserGetter) {},
			checkResponse: func(t *testing.T, result either.Either[*apperrors.Error, domain.Account]) {
				require.True(t, result.IsWrong())
				require.Equal(t, apperrors.KindValidation, result.Wrong().Kind())
			},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			users := NewMockUserGetter(ctrl)
			tc.buildStubs(repo, users)

			result := New(repo, users).Create(context.Background(), tc.arg)
			tc.checkResponse(t, result)
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	account := randomAccount(randomUser())

	testCases := []struct {
		name          string
		arg           GetParams
		buildStubs    func(repo *MockRepo)
		checkResponse func(t *testing.T, result either.Either[*apperrors.Error, domain.Account])
	}{
		{
			name: "OK",
			arg:  GetParams{ID: account.ID.String()},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).
					Return(account, nil)
			},
			checkResponse: func(t *testing.T, result either.Either[*apperrors.Error, domain.Account]) {
				require.True(t, result.IsRight())
				require.Equal(t, account, result.Right())
			},
		},
		{
			name: "NotFound",
			arg:  GetParams{ID: account.ID.String()},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).
					Return(domain.Account{}, apperrors.NotFound("account", "id", account.ID))
			},
			checkResponse: func(t *testing.T, result either.Either[*apperrors.Error, domain.Account]) {
				require.True(t, result.IsWrong())
				require.Equal(t, apperrors.KindNotFound, result.Wrong().Kind())
			},
		},
		{
			name:       "InvalidID",
			arg:        GetParams{ID: "nope"},
			buildStubs: func(repo *MockRepo) {},
			checkResponse: func(t *testing.T, result either.Either[*apperrors.Error, domain.Account]) {
				require.True(t, result.IsWrong())
				require.Equal(t, apperrors.KindValidation, result.Wrong().Kind())
			},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			result := New(repo, NewMockUserGetter(ctrl)).Get(context.Background(), tc.arg)
			tc.checkResponse(t, result)
		})
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	accounts := []domain.Account{randomAccount(), randomAccount(randomUser())}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().
		List(gomock.Any(), gomock.Eq(domain.ListAccountsParams{Limit: 5, Offset: 5, Name: "house"})).
		Times(1).
		Return(accounts, 12, nil)

	result := New(repo, NewMockUserGetter(ctrl)).
		List(context.Background(), ListParams{Page: 2, Limit: 5, Name: "house"})
	require.True(t, result.IsRight())

	page := result.Right()
	require.Equal(t, accounts, page.Data)
	require.Equal(t, 2, page.Pagination.Page)
	require.Equal(t, 12, page.Pagination.Total)
	require.Equal(t, 3, page.Pagination.TotalPages)
}

func TestListDateFilters(t *testing.T) {
	t.Parallel()

	accounts := []domain.Account{randomAccount()}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().
		List(gomock.Any(), gomock.Eq(domain.ListAccountsParams{
			Limit:     10,
			Offset:    0,
			CreatedAt: domain.FilterTime("2024-01-02"),
			UpdatedAt: domain.FilterTime("2024-03-04"),
		})).
		Times(1).
		Return(accounts, 1, nil)

	result := New(repo, NewMockUserGetter(ctrl)).
		List(context.Background(), ListParams{CreatedAt: "2024-01-02", UpdatedAt: "2024-03-04"})
	require.True(t, result.IsRight())
	require.Equal(t, accounts, result.Right().Data)
}

func TestListMalformedDateFilter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	result := New(NewMockRepo(ctrl), NewMockUserGetter(ctrl)).
		List(context.Background(), ListParams{CreatedAt: "January 2nd"})
	require.True(t, result.IsWrong())
	require.Equal(t, apperrors.KindValidation, result.Wrong().Kind())
	require.Contains(t, result.Wrong().Fields(), "createdAt")
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	account := randomAccount(randomUser())
	newName := randompkg.Name()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().Get(gomock.Any(), gomock.Eq(account.ID)).Times(1).Return(account, nil)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(_ context.Context, a domain.Account) (domain.Account, error) {
			require.Equal(t, newName, a.Name)
			a.Users = nil
			return a, nil
		})

	result := New(repo, NewMockUserGetter(ctrl)).
		Update(context.Background(), UpdateParams{ID: account.ID.String(), Name: newName})
	require.True(t, result.IsRight())
	require.Equal(t, newName, result.Right().Name)
	require.Len(t, result.Right().Users, 1)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	account := randomAccount(randomUser())

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().Get(gomock.Any(), gomock.Eq(account.ID)).Times(1).Return(account, nil)
	repo.EXPECT().Delete(gomock.Any(), gomock.Eq(account.ID)).Times(1).Return(nil)

	result := New(repo, NewMockUserGetter(ctrl)).
		Delete(context.Background(), GetParams{ID: account.ID.String()})
	require.True(t, result.IsRight())
	require.Equal(t, account, result.Right())
}
