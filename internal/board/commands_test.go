package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/quadro/internal/models"
)

func TestCommands_Apply(t *testing.T) {
	s := New()
	cmds := []Command{
		AddTask{Category: models.Added, Text: "first"},
		AddTask{Category: models.Added, Text: "second"},
		MoveTask{From: models.Added, Index: 0, To: models.Sometime},
		DeleteTask{Category: models.Added, Index: 0},
	}

	for _, cmd := range cmds {
		require.NoError(t, cmd.Apply(s), cmd.String())
	}

	assert.Equal(t, []string{}, s.Tasks(models.Added))
	assert.Equal(t, []string{"first"}, s.Tasks(models.Sometime))
}

func TestCommands_ErrorsPropagate(t *testing.T) {
	s := New()

	assert.ErrorIs(t, AddTask{Category: models.Added, Text: " "}.Apply(s), models.ErrInvalidInput)
	assert.ErrorIs(t, MoveTask{From: models.Added, Index: 0, To: models.Done}.Apply(s), models.ErrIndexOutOfRange)
	assert.ErrorIs(t, DeleteTask{Category: models.Done, Index: 3}.Apply(s), models.ErrIndexOutOfRange)
}

func TestCommands_String(t *testing.T) {
	assert.Equal(t, `add "x" to added`, AddTask{Category: models.Added, Text: "x"}.String())
	assert.Equal(t, "move donow[2] to done", MoveTask{From: models.DoNow, Index: 2, To: models.Done}.String())
	assert.Equal(t, "delete sometime[0]", DeleteTask{Category: models.Sometime, Index: 0}.String())
}
