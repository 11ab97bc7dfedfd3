//go:build unit

package commands_test

import (
	"context"
	"testing"

	"donorhub/internal/usecase/commands"
	"donorhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type InventoryCommandsTestSuite struct {
	suite.Suite
	store *fakeStore
	uc    commands.InventoryCommands
}

func (s *InventoryCommandsTestSuite) SetupTest() {
	s.store = &fakeStore{}
	s.uc = commands.NewInventoryUseCase(&fakeUnitOfWork{store: s.store})
}

func TestInventoryCommandsSuite(t *testing.T) {
	suite.Run(t, new(InventoryCommandsTestSuite))
}

func (s *InventoryCommandsTestSuite) seedHospital() uuid.UUID {
	id := uuid.New()
	s.store.hospital = &shared.HospitalSnapshot{ID: id, Name: "Central Hospital"}
	return id
}

func (s *InventoryCommandsTestSuite) TestRestockNormalizesBloodType() {
	hospitalID := s.seedHospital()
	req := commands.RestockInventoryRequest{
		BloodType:     "0+",
		Units:         12,
		MinimumStock:  5,
		CriticalStock: 2,
	}

	result, err := s.uc.Restock(context.Background(), hospitalID, req, uuid.New())

	s.Require().NoError(err)
	s.Equal("O+", result.BloodType)

	s.Require().Len(s.store.upserts, 1)
	up := s.store.upserts[0]
	s.Equal(hospitalID, up.hospitalID)
	s.Equal("O+", up.bloodType)
	s.Equal(int32(12), up.units)
	s.Equal(int32(5), up.minimum)
	s.Equal(int32(2), up.critical)
}

func (s *InventoryCommandsTestSuite) TestRestockUnknownHospital() {
	req := commands.RestockInventoryRequest{BloodType: "A+", Units: 10, MinimumStock: 5, CriticalStock: 2}

	result, err := s.uc.Restock(context.Background(), uuid.New(), req, uuid.New())

	s.Require().Error(err)
	s.Require().ErrorIs(err, commands.ErrHospitalNotFound)
	s.Nil(result)
	s.Empty(s.store.upserts)
}

func (s *InventoryCommandsTestSuite) TestRestockRejectsUnknownBloodType() {
	hospitalID := s.seedHospital()
	req := commands.RestockInventoryRequest{BloodType: "Z+", Units: 10, MinimumStock: 5, CriticalStock: 2}

	result, err := s.uc.Restock(context.Background(), hospitalID, req, uuid.New())

	s.Require().Error(err)
	s.Require().ErrorIs(err, commands.ErrDomainValidation)
	s.Nil(result)
	s.Empty(s.store.upserts)
}

func (s *InventoryCommandsTestSuite) TestRestockRejectsInvertedThresholds() {
	hospitalID := s.seedHospital()
	req := commands.RestockInventoryRequest{BloodType: "A+", Units: 10, MinimumStock: 3, CriticalStock: 7}

	result, err := s.uc.Restock(context.Background(), hospitalID, req, uuid.New())

	s.Require().Error(err)
	s.Require().ErrorIs(err, commands.ErrDomainValidation)
	s.Nil(result)
	s.Empty(s.store.upserts)
}
