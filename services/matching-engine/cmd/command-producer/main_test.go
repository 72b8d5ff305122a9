package main

import (
	"testing"

	"github.com/muhammadchandra19/exchange/pkg/amount"
	orderreaderv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/order-reader/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_ProducesValidCommands(t *testing.T) {
	gen := newGenerator(42, []string{"BTC-USD", "ETH-USD"}, 3, 3945.5, 200)
	conv := amount.NewConverter(8)

	seen := map[orderreaderv1.Action]int{}
	for i := 0; i < 500; i++ {
		cmd := gen.next()
		require.NoError(t, cmd.Validate(), "command %d", i)
		seen[cmd.Action]++

		switch cmd.Action {
		case orderreaderv1.ActionSubmit:
			input, err := cmd.Order.ToInput(conv, conv)
			require.NoError(t, err)
			require.NoError(t, input.Validate())
			assert.Equal(t, cmd.Session.UserID, input.UUID)
		case orderreaderv1.ActionEdit:
			_, err := cmd.Updates.ToUpdates(conv, conv)
			require.NoError(t, err)
		}
	}

	assert.Positive(t, seen[orderreaderv1.ActionSubmit])
	assert.Positive(t, seen[orderreaderv1.ActionCancel])
	assert.Positive(t, seen[orderreaderv1.ActionEdit])
}
