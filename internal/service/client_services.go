package service

import (
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/adapter"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/logger"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/profile"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/utils"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/vault"
)

// ClientServices groups everything the client app talks to.
type ClientServices struct {
	Family  FamilyService
	Profile profile.Store
	AI      adapter.AIBackend
}

func NewClientServices(v vault.Store, profiles profile.Store, ai adapter.AIBackend, log *logger.Logger) *ClientServices {
	return &ClientServices{
		Family:  NewFamilyService(v, utils.NewUUIDGenerator(), log),
		Profile: profiles,
		AI:      ai,
	}
}
