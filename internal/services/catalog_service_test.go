package services

import (
	"errors"
	"testing"

	"github.com/hesapmarket/marketplace-backend/internal/dto"
	"github.com/hesapmarket/marketplace-backend/internal/models"
)

func TestListGames(t *testing.T) {
	db := testDB(t)
	svc := NewCatalogService(db)
	stocked := seedGame(t, db, "Portal 2")
	empty := seedGame(t, db, "Half-Life 3")
	seedAccount(t, db, stocked.ID, "acc1")
	seedAccount(t, db, stocked.ID, "acc2")

	games, err := svc.ListGames()
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("len(games) = %d, want 2", len(games))
	}

	if got := games[stocked.ID].Accounts; len(got) != 2 {
		t.Errorf("stocked game accounts = %d, want 2", len(got))
	}
	// No accounts still means an empty list in the payload, never null.
	if got := games[empty.ID].Accounts; got == nil {
		t.Error("empty game has nil accounts list")
	} else if len(got) != 0 {
		t.Errorf("empty game accounts = %d, want 0", len(got))
	}
}

func TestAddGame(t *testing.T) {
	db := testDB(t)
	svc := NewCatalogService(db)

	game, err := svc.AddGame(&dto.AddGameRequest{
		Name:     "  Portal 2  ",
		Platform: "steam",
		Price:    29.99,
	})
	if err != nil {
		t.Fatalf("AddGame: %v", err)
	}
	if game.ID == 0 {
		t.Error("game id not assigned")
	}
	if game.Name != "Portal 2" {
		t.Errorf("name = %q, want trimmed Portal 2", game.Name)
	}

	if _, err := svc.AddGame(&dto.AddGameRequest{Name: "   "}); !errors.Is(err, ErrValidation) {
		t.Errorf("blank name: got %v, want ErrValidation", err)
	}
}

func TestDeleteGameCascades(t *testing.T) {
	db := testDB(t)
	svc := NewCatalogService(db)
	doomed := seedGame(t, db, "Portal 2")
	kept := seedGame(t, db, "Half-Life 3")
	seedAccount(t, db, doomed.ID, "acc1")
	seedKey(t, db, doomed.ID, "DOOMED-KEY")
	keptAccount := seedAccount(t, db, kept.ID, "acc2")
	keptKey := seedKey(t, db, kept.ID, "KEPT-KEY")

	if err := svc.DeleteGame(doomed.ID); err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}

	var accounts, keys int64
	db.Model(&models.GameAccount{}).Where("game_id = ?", doomed.ID).Count(&accounts)
	db.Model(&models.Key{}).Where("game_id = ?", doomed.ID).Count(&keys)
	if accounts != 0 || keys != 0 {
		t.Errorf("orphans after delete: %d accounts, %d keys", accounts, keys)
	}

	// The other game's stock is untouched.
	if err := db.First(&models.GameAccount{}, keptAccount.ID).Error; err != nil {
		t.Errorf("kept account gone: %v", err)
	}
	if err := db.First(&models.Key{}, keptKey.ID).Error; err != nil {
		t.Errorf("kept key gone: %v", err)
	}

	if err := svc.DeleteGame(doomed.ID); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("second delete: got %v, want ErrGameNotFound", err)
	}
}

func TestAddAccount(t *testing.T) {
	db := testDB(t)
	svc := NewCatalogService(db)
	game := seedGame(t, db, "Portal 2")

	account, err := svc.AddAccount(game.ID, &dto.AddAccountRequest{
		Username:  "steamuser",
		Password:  "secret",
		Email:     "steamuser@mail.com",
		GuardCode: "GUARD",
	})
	if err != nil {
		t.Fatalf("AddAccount: %v", err)
	}
	if account.Status != models.AccountAvailable {
		t.Errorf("status = %q, want available", account.Status)
	}

	if _, err := svc.AddAccount(game.ID, &dto.AddAccountRequest{Username: "nopass"}); !errors.Is(err, ErrValidation) {
		t.Errorf("missing password: got %v, want ErrValidation", err)
	}
	if _, err := svc.AddAccount(999, &dto.AddAccountRequest{Username: "u", Password: "p"}); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("unknown game: got %v, want ErrGameNotFound", err)
	}
}

func TestDeleteAccount(t *testing.T) {
	db := testDB(t)
	svc := NewCatalogService(db)
	game := seedGame(t, db, "Portal 2")
	other := seedGame(t, db, "Half-Life 3")
	account := seedAccount(t, db, game.ID, "acc1")

	// Account id must belong to the game in the path.
	if err := svc.DeleteAccount(other.ID, account.ID); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("wrong game: got %v, want ErrAccountNotFound", err)
	}
	if err := svc.DeleteAccount(game.ID, account.ID); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}
	if err := svc.DeleteAccount(game.ID, account.ID); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("second delete: got %v, want ErrAccountNotFound", err)
	}
}
