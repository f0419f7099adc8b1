package session

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sessions.json")
	store, err := NewStore(path)
	require.NoError(t, err)

	return store, path
}

func TestRoundTrip(t *testing.T) {
	store, path := newTestStore(t)

	created, err := store.Create()
	require.NoError(t, err)

	turns := []Turn{
		{
			Sender:  SenderUser,
			Content: "What are the symptoms of pneumonia?",
			Kind:    KindNormal,
			Time:    time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			Sender:  SenderAssistant,
			Content: "- Fever\n- Chills",
			Kind:    KindNormal,
			Time:    time.Date(2026, 8, 1, 10, 0, 5, 0, time.UTC),
		},
		{
			Sender:  SenderAssistant,
			Content: "No information found for \"Xyzabc\".",
			Kind:    KindWarning,
			Time:    time.Date(2026, 8, 1, 10, 1, 0, 0, time.UTC),
		},
	}

	var last *Session
	for _, turn := range turns {
		last, err = store.Append(created.ID, turn)
		require.NoError(t, err)
	}

	// a fresh store on the same file must reproduce the identical ordered
	// turn sequence
	reopened, err := NewStore(path)
	require.NoError(t, err)

	loaded, err := reopened.Get(created.ID)
	require.NoError(t, err)

	require.Len(t, loaded.Turns, len(turns))
	for i, turn := range loaded.Turns {
		assert.Equal(t, last.Turns[i].ID, turn.ID)
		assert.Equal(t, turns[i].Sender, turn.Sender)
		assert.Equal(t, turns[i].Content, turn.Content)
		assert.Equal(t, turns[i].Kind, turn.Kind)
		assert.True(t, turns[i].Time.Equal(turn.Time))
	}

	assert.True(t, loaded.UpdatedAt.Equal(turns[2].Time))
}

func TestTitleFromFirstUserTurn(t *testing.T) {
	store, _ := newTestStore(t)

	created, err := store.Create()
	require.NoError(t, err)
	assert.Empty(t, created.Title)

	long := strings.Repeat("symptoms ", 10)
	updated, err := store.Append(created.ID, Turn{Sender: SenderUser, Content: long})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(updated.Title, "..."))
	assert.LessOrEqual(t, len([]rune(updated.Title)), maxTitleLength+3)

	// later user turns do not retitle the session
	title := updated.Title
	updated, err = store.Append(created.ID, Turn{Sender: SenderUser, Content: "another question"})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
}

func TestAssistantTurnDoesNotSetTitle(t *testing.T) {
	store, _ := newTestStore(t)

	created, err := store.Create()
	require.NoError(t, err)

	updated, err := store.Append(created.ID, Turn{Sender: SenderAssistant, Content: "hello"})
	require.NoError(t, err)
	assert.Empty(t, updated.Title)
}

func TestAppendFillsDefaults(t *testing.T) {
	store, _ := newTestStore(t)

	created, err := store.Create()
	require.NoError(t, err)

	updated, err := store.Append(created.ID, Turn{Sender: SenderUser, Content: "hi"})
	require.NoError(t, err)

	turn := updated.Turns[0]
	assert.NotEmpty(t, turn.ID)
	assert.False(t, turn.Time.IsZero())
	assert.Equal(t, KindNormal, turn.Kind)
}

func TestAppendUnknownSession(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Append("missing", Turn{Sender: SenderUser, Content: "hi"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrder(t *testing.T) {
	store, _ := newTestStore(t)

	first, err := store.Create()
	require.NoError(t, err)
	second, err := store.Create()
	require.NoError(t, err)

	_, err = store.Append(first.ID, Turn{
		Sender:  SenderUser,
		Content: "newest",
		Time:    time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = store.Append(second.ID, Turn{
		Sender:  SenderUser,
		Content: "older",
		Time:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	sessions, err := store.List()
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, first.ID, sessions[0].ID)
	assert.Equal(t, second.ID, sessions[1].ID)
}

func TestDelete(t *testing.T) {
	store, _ := newTestStore(t)

	created, err := store.Create()
	require.NoError(t, err)

	require.NoError(t, store.Delete(created.ID))

	_, err = store.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.Delete(created.ID), ErrNotFound)
}
