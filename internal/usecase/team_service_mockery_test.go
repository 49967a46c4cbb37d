package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/ihl-standings/internal/domain/team"
	teammock "github.com/riskibarqy/ihl-standings/internal/mocks/domain/team"
	"github.com/riskibarqy/ihl-standings/internal/platform/logging"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTeamService_List_ClosesSessionOnQueryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), "trace_id", "trace-123")
	opener := teammock.NewOpener(t)
	session := teammock.NewSession(t)
	queryErr := errors.New("pq: relation \"teams\" does not exist")

	opener.On("Open", mock.Anything).Return(session, nil).Once()
	session.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(nil, queryErr).
		Once()
	session.On("Close").Return(nil).Once()

	_, err := NewTeamService(opener, logging.NewNop()).List(ctx)
	require.ErrorIs(t, err, queryErr)
}

func TestTeamService_Create_OpenFailureUsingMockery(t *testing.T) {
	t.Parallel()

	opener := teammock.NewOpener(t)
	opener.On("Open", mock.Anything).Return(nil, errors.New("dial tcp: connection refused")).Once()

	_, err := NewTeamService(opener, logging.NewNop()).Create(context.Background(), team.Input{Name: strPtr("X")})
	require.ErrorIs(t, err, ErrDependencyUnavailable)
}

func TestTeamService_Update_CloseErrorSurfacesAfterSuccessUsingMockery(t *testing.T) {
	t.Parallel()

	opener := teammock.NewOpener(t)
	session := teammock.NewSession(t)
	closeErr := errors.New("close postgres connection: broken pipe")
	in := team.Input{Name: strPtr("Kings"), Wins: 2}

	opener.On("Open", mock.Anything).Return(session, nil).Once()
	session.On("Update", mock.Anything, int64(3), in).Return(team.Team{ID: 3, Name: "Kings", Wins: 2}, true, nil).Once()
	session.On("Close").Return(closeErr).Once()

	_, _, err := NewTeamService(opener, logging.NewNop()).Update(context.Background(), "3", in)
	require.ErrorIs(t, err, closeErr)
}

func TestTeamService_Delete_QueryErrorWinsOverCloseErrorUsingMockery(t *testing.T) {
	t.Parallel()

	opener := teammock.NewOpener(t)
	session := teammock.NewSession(t)
	queryErr := errors.New("pq: canceling statement due to statement timeout")

	opener.On("Open", mock.Anything).Return(session, nil).Once()
	session.On("Delete", mock.Anything, int64(9)).Return(queryErr).Once()
	session.On("Close").Return(errors.New("close failed")).Once()

	err := NewTeamService(opener, logging.NewNop()).Delete(context.Background(), "9")
	require.ErrorIs(t, err, queryErr)
}

func TestTeamService_Delete_BlankIDSkipsStatementUsingMockery(t *testing.T) {
	t.Parallel()

	opener := teammock.NewOpener(t)
	session := teammock.NewSession(t)

	opener.On("Open", mock.Anything).Return(session, nil).Once()
	session.On("Close").Return(nil).Once()

	require.NoError(t, NewTeamService(opener, logging.NewNop()).Delete(context.Background(), ""))
	session.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
