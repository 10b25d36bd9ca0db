package purchase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSubmitAssignsIDAndDefaults(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	p, err := svc.Submit(context.Background(), "user-1", SubmitInput{
		CryptoType:      "ETH",
		AmountCrypto:    1.0,
		AmountUSD:       2000,
		TokensPurchased: 20000,
		WalletAddress:   "0xabc",
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.Equal(t, "user-1", p.UserID)
	require.Equal(t, StatusPending, p.Status)
	require.False(t, p.CreatedAt.IsZero())
	require.Equal(t, 2000.0, p.AmountUSD)
}

func TestListForUserNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, offset := range []time.Duration{2 * time.Hour, 0, time.Hour} {
		p := Purchase{
			ID:         string(rune('a' + i)),
			UserID:     "user-1",
			CryptoType: "ETH",
			Status:     StatusPending,
			CreatedAt:  base.Add(offset),
		}
		require.NoError(t, repo.Create(ctx, p))
	}

	listed, err := svc.ListForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for i := 1; i < len(listed); i++ {
		require.False(t, listed[i].CreatedAt.After(listed[i-1].CreatedAt),
			"expected newest-first ordering at index %d", i)
	}
	require.Equal(t, "a", listed[0].ID)
	require.Equal(t, "b", listed[2].ID)
}

func TestListForUserTiesBreakByInsertionOrder(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, id := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, Purchase{
			ID: id, UserID: "user-1", CreatedAt: at, Status: StatusPending,
		}))
	}

	listed, err := svc.ListForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, []string{"third", "second", "first"},
		[]string{listed[0].ID, listed[1].ID, listed[2].ID})
}

func TestListForUserScopedToOwner(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.Submit(ctx, "user-1", SubmitInput{CryptoType: "ETH", WalletAddress: "0xabc"})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "user-2", SubmitInput{CryptoType: "BTC", WalletAddress: "bc1q"})
	require.NoError(t, err)

	mine, err := svc.ListForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "ETH", mine[0].CryptoType)
}

func TestListAllCapped(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, Purchase{
			ID:        string(rune('a' + i)),
			UserID:    "user-1",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Status:    StatusPending,
		}))
	}

	capped, err := repo.ListAll(ctx, 3)
	require.NoError(t, err)
	require.Len(t, capped, 3)
	require.Equal(t, "e", capped[0].ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 5, count)
}
