package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/charroster/internal/model"
	"github.com/mcoot/charroster/internal/storage"
)

const sampleRoster = `Name,Profession,Level,HP,Equipment
"John, Brave",Fighter,1,10,sword|shield|potion
Jane,Wizard,2,6,staff|robe|book
Bob Sneaky,Rogue,3,8,dagger|lockpick
Alice,Fighter,4,12,mace|armor|potion
`

type StorageSuite struct {
	suite.Suite
	path    string
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "input.csv")
	s.storage = New(s.path)
	s.ctx = context.Background()
}

func (s *StorageSuite) writeFile(content string) {
	s.Require().NoError(os.WriteFile(s.path, []byte(content), 0o644))
}

func (s *StorageSuite) readFile() string {
	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	return string(data)
}

// ReadAll tests

func (s *StorageSuite) TestReadAllSkipsHeader() {
	s.writeFile("Name,Profession,Level,HP,Equipment\nJane,Wizard,2,6,staff|robe\n")

	characters, err := s.storage.ReadAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(characters, 1)
	s.Equal(model.NewCharacter("Jane", "Wizard", 2, 6, []string{"staff", "robe"}), characters[0])
}

func (s *StorageSuite) TestReadAllWithoutHeader() {
	s.writeFile("Jane,Wizard,2,6,staff\nAlice,Cleric,4,12,mace")

	characters, err := s.storage.ReadAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(characters, 2)
	s.Equal("Jane", characters[0].Name)
	s.Equal("Alice", characters[1].Name)
}

func (s *StorageSuite) TestReadAllPreservesFileOrder() {
	s.writeFile(sampleRoster)

	characters, err := s.storage.ReadAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(characters, 4)
	s.Equal("John, Brave", characters[0].Name)
	s.Equal("Jane", characters[1].Name)
	s.Equal("Bob Sneaky", characters[2].Name)
	s.Equal("Alice", characters[3].Name)
}

func (s *StorageSuite) TestReadAllHandlesCRLF() {
	s.writeFile("Name,Profession,Level,HP,Equipment\r\nJane,Wizard,2,6,staff\r\n")

	characters, err := s.storage.ReadAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(characters, 1)
	s.Equal([]string{"staff"}, characters[0].Equipment)
}

func (s *StorageSuite) TestReadAllSkipsBlankLines() {
	s.writeFile("Jane,Wizard,2,6,staff\n\n   \nAlice,Cleric,4,12,mace\n")

	characters, err := s.storage.ReadAll(s.ctx)
	s.Require().NoError(err)
	s.Len(characters, 2)
}

func (s *StorageSuite) TestReadAllMissingFileIsEmpty() {
	characters, err := s.storage.ReadAll(s.ctx)
	s.Require().NoError(err)
	s.NotNil(characters)
	s.Empty(characters)
}

func (s *StorageSuite) TestReadAllReportsMalformedLine() {
	s.writeFile("Name,Profession,Level,HP,Equipment\nJane,Wizard,2,6,staff\nBroken,Rogue,x,8,dagger\n")

	characters, err := s.storage.ReadAll(s.ctx)
	s.Nil(characters)
	s.ErrorIs(err, model.ErrMalformedRecord)

	var lineErr *storage.LineError
	s.Require().ErrorAs(err, &lineErr)
	s.Equal(3, lineErr.Line)
	s.Equal("Broken,Rogue,x,8,dagger", lineErr.Text)
}

func (s *StorageSuite) TestReadAllUnreadablePathIsIOError() {
	// A directory where the file should be cannot be read as a roster
	s.Require().NoError(os.Mkdir(s.path, 0o755))

	_, err := s.storage.ReadAll(s.ctx)
	s.ErrorIs(err, model.ErrStorageIO)
	s.NotErrorIs(err, model.ErrMalformedRecord)
}

// FindByName tests

func (s *StorageSuite) TestFindByNameCaseInsensitive() {
	s.writeFile(sampleRoster)

	c, err := s.storage.FindByName(s.ctx, "bob sneaky")
	s.Require().NoError(err)
	s.Equal(model.NewCharacter("Bob Sneaky", "Rogue", 3, 8, []string{"dagger", "lockpick"}), c)
}

func (s *StorageSuite) TestFindByNameWithComma() {
	s.writeFile(sampleRoster)

	c, err := s.storage.FindByName(s.ctx, "John, Brave")
	s.Require().NoError(err)
	s.Equal("Fighter", c.Profession)
}

func (s *StorageSuite) TestFindByNameNotFound() {
	s.writeFile(sampleRoster)

	c, err := s.storage.FindByName(s.ctx, "Nobody")
	s.Nil(c)
	s.ErrorIs(err, model.ErrCharacterNotFound)
}

func (s *StorageSuite) TestFindByNameReturnsFirstMatch() {
	s.writeFile("Jane,Wizard,2,6,staff\njane,Rogue,5,9,dagger\n")

	c, err := s.storage.FindByName(s.ctx, "JANE")
	s.Require().NoError(err)
	s.Equal("Wizard", c.Profession)
}

// FindByProfession tests

func (s *StorageSuite) TestFindByProfession() {
	s.writeFile(sampleRoster)

	fighters, err := s.storage.FindByProfession(s.ctx, "Fighter")
	s.Require().NoError(err)
	s.Require().Len(fighters, 2)
	s.Equal("John, Brave", fighters[0].Name)
	s.Equal("Alice", fighters[1].Name)
}

func (s *StorageSuite) TestFindByProfessionIsCaseSensitive() {
	s.writeFile(sampleRoster)

	fighters, err := s.storage.FindByProfession(s.ctx, "fighter")
	s.Require().NoError(err)
	s.NotNil(fighters)
	s.Empty(fighters)
}

// WriteAll tests

func (s *StorageSuite) TestWriteAllReplacesContents() {
	s.writeFile(sampleRoster)

	err := s.storage.WriteAll(s.ctx, []*model.Character{
		model.NewCharacter("Reginald III, Sir", "Knight", 5, 20, []string{"sword", "armor", "horse"}),
		model.NewCharacter("Jane", "Wizard", 2, 6, nil),
	})
	s.Require().NoError(err)

	s.Equal("Name,Profession,Level,HP,Equipment\n"+
		"\"Reginald III, Sir\",Knight,5,20,sword|armor|horse\n"+
		"Jane,Wizard,2,6,\n", s.readFile())
}

func (s *StorageSuite) TestWriteAllThenReadAll() {
	characters := []*model.Character{
		model.NewCharacter("John, Brave", "Fighter", 1, 10, []string{"sword"}),
		model.NewCharacter("Jane", "Wizard", 2, 6, []string{"staff", "robe"}),
	}
	s.Require().NoError(s.storage.WriteAll(s.ctx, characters))

	got, err := s.storage.ReadAll(s.ctx)
	s.Require().NoError(err)
	s.Equal(characters, got)
}

func (s *StorageSuite) TestWriteAllCreatesDirectory() {
	s.storage = New(filepath.Join(s.T().TempDir(), "nested", "dir", "roster.csv"))

	err := s.storage.WriteAll(s.ctx, []*model.Character{model.NewCharacter("Jane", "Wizard", 2, 6, nil)})
	s.Require().NoError(err)

	got, err := s.storage.ReadAll(s.ctx)
	s.Require().NoError(err)
	s.Len(got, 1)
}

func (s *StorageSuite) TestWriteAllEmpty() {
	s.writeFile(sampleRoster)

	s.Require().NoError(s.storage.WriteAll(s.ctx, nil))
	s.Equal("Name,Profession,Level,HP,Equipment\n", s.readFile())
}

// Append tests

func (s *StorageSuite) TestAppendThenReadAll() {
	s.writeFile(sampleRoster)
	newChar := model.NewCharacter("Gimli, Son of Gloin", "Fighter", 7, 30, []string{"axe", "helm"})

	s.Require().NoError(s.storage.Append(s.ctx, newChar))

	characters, err := s.storage.ReadAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(characters, 5)
	s.Equal(newChar, characters[4])
}

func (s *StorageSuite) TestAppendKeepsExistingLines() {
	s.writeFile(sampleRoster)

	s.Require().NoError(s.storage.Append(s.ctx, model.NewCharacter("Jane", "Wizard", 2, 6, nil)))
	s.Equal(sampleRoster+"Jane,Wizard,2,6,\n", s.readFile())
}

func (s *StorageSuite) TestAppendAddsMissingNewline() {
	s.writeFile("Jane,Wizard,2,6,staff")

	s.Require().NoError(s.storage.Append(s.ctx, model.NewCharacter("Alice", "Cleric", 4, 12, nil)))
	s.Equal("Jane,Wizard,2,6,staff\nAlice,Cleric,4,12,\n", s.readFile())
}

func (s *StorageSuite) TestAppendCreatesFileWithHeader() {
	s.Require().NoError(s.storage.Append(s.ctx, model.NewCharacter("Jane", "Wizard", 2, 6, []string{"staff"})))
	s.Equal("Name,Profession,Level,HP,Equipment\nJane,Wizard,2,6,staff\n", s.readFile())
}
