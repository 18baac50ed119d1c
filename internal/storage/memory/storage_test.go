package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/charroster/internal/model"
	"github.com/mcoot/charroster/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = NewWithLines([]string{
		"Name,Profession,Level,HP,Equipment",
		`"John, Brave",Fighter,1,10,sword|shield|potion`,
		"Jane,Wizard,2,6,staff|robe|book",
		"Alice,Fighter,4,12,mace|armor",
	})
	s.ctx = context.Background()
}

func (s *StorageSuite) TestEmptyStorage() {
	characters, err := New().ReadAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(characters)
}

func (s *StorageSuite) TestReadAll() {
	characters, err := s.storage.ReadAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(characters, 3)
	s.Equal("John, Brave", characters[0].Name)
}

func (s *StorageSuite) TestReadAllReturnsFreshCopies() {
	first, err := s.storage.ReadAll(s.ctx)
	s.Require().NoError(err)
	first[0].LevelUp()

	second, err := s.storage.ReadAll(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, second[0].Level)
}

func (s *StorageSuite) TestReadAllMalformed() {
	store := NewWithLines([]string{"Jane,Wizard,two,6,staff"})

	_, err := store.ReadAll(s.ctx)
	s.ErrorIs(err, model.ErrMalformedRecord)

	var lineErr *storage.LineError
	s.Require().ErrorAs(err, &lineErr)
	s.Equal(1, lineErr.Line)
}

func (s *StorageSuite) TestFindByName() {
	c, err := s.storage.FindByName(s.ctx, "JOHN, BRAVE")
	s.Require().NoError(err)
	s.Equal("Fighter", c.Profession)

	_, err = s.storage.FindByName(s.ctx, "Nobody")
	s.ErrorIs(err, model.ErrCharacterNotFound)
}

func (s *StorageSuite) TestFindByProfession() {
	fighters, err := s.storage.FindByProfession(s.ctx, "Fighter")
	s.Require().NoError(err)
	s.Require().Len(fighters, 2)
	s.Equal("John, Brave", fighters[0].Name)
	s.Equal("Alice", fighters[1].Name)
}

func (s *StorageSuite) TestWriteAll() {
	err := s.storage.WriteAll(s.ctx, []*model.Character{model.NewCharacter("Bob, Sneaky", "Rogue", 3, 8, nil)})
	s.Require().NoError(err)

	s.Equal([]string{"Name,Profession,Level,HP,Equipment", `"Bob, Sneaky",Rogue,3,8,`}, s.storage.Lines())
}

func (s *StorageSuite) TestAppend() {
	newChar := model.NewCharacter("Bob, Sneaky", "Rogue", 3, 8, []string{"dagger"})
	s.Require().NoError(s.storage.Append(s.ctx, newChar))

	characters, err := s.storage.ReadAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(characters, 4)
	s.Equal(newChar, characters[3])
}

func (s *StorageSuite) TestAppendToEmptyAddsHeader() {
	store := New()
	s.Require().NoError(store.Append(s.ctx, model.NewCharacter("Jane", "Wizard", 2, 6, nil)))
	s.Equal([]string{"Name,Profession,Level,HP,Equipment", "Jane,Wizard,2,6,"}, store.Lines())
}
