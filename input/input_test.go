package input

import (
	"llist/linkedlist"
	"llist/util"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type inputTestSuite struct {
	suite.Suite
	dirPath string
}

func TestInputTestSuite(t *testing.T) {
	suite.Run(t, new(inputTestSuite))
}

func (s *inputTestSuite) SetupTest() {
	var err error
	s.dirPath, err = os.MkdirTemp("", "llist-input-*")
	if err != nil {
		panic(err)
	}
}

func (s *inputTestSuite) TearDownTest() {
	err := os.RemoveAll(s.dirPath)
	if err != nil {
		panic(err)
	}
}

func (s *inputTestSuite) writeFile(name string, content []byte) string {
	path := filepath.Join(s.dirPath, name)
	s.Require().NoError(os.WriteFile(path, content, 0644))
	return path
}

func (s *inputTestSuite) TestLoadJSONNumbers() {
	path := s.writeFile("numbers.json", []byte(`[6, 2, 78.5, 1e2]`))
	items, err := LoadFile(path)
	s.Require().NoError(err)
	s.Equal([]any{6, 2, 78.5, 100.0}, items)
}

func (s *inputTestSuite) TestLoadJSONObjects() {
	path := s.writeFile("people.json", []byte(`[{"name": "Cora", "age": 8, "scores": [1, 2.5]}, {"name": "Dan", "age": 33}]`))
	items, err := LoadFile(path)
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Equal(linkedlist.Record{"name": "Cora", "age": 8, "scores": []any{1, 2.5}}, items[0])
}

func (s *inputTestSuite) TestLoadCSV() {
	path := s.writeFile("people.csv", []byte("name, age\nCora, 8\nDan, 33\n"))
	items, err := LoadFile(path)
	s.Require().NoError(err)
	s.Equal([]any{
		linkedlist.Record{"name": "Cora", "age": 8},
		linkedlist.Record{"name": "Dan", "age": 33},
	}, items)
}

func (s *inputTestSuite) TestLoadTSV() {
	path := s.writeFile("people.tsv", []byte("name\tage\nCora\t8\n"))
	items, err := LoadFile(path)
	s.Require().NoError(err)
	s.Equal([]any{linkedlist.Record{"name": "Cora", "age": 8}}, items)
}

func (s *inputTestSuite) TestLoadLines() {
	path := s.writeFile("values.txt", []byte("pear\r\n\r\n 12 \n1.5\n"))
	items, err := LoadFile(path)
	s.Require().NoError(err)
	s.Equal([]any{"pear", 12, 1.5}, items)
}

func (s *inputTestSuite) TestLoadUnknownExtensionAsLines() {
	path := s.writeFile("values", []byte("a\nb\n"))
	items, err := LoadFile(path)
	s.Require().NoError(err)
	s.Equal([]any{"a", "b"}, items)
}

func (s *inputTestSuite) TestLoadDecodesLegacyEncoding() {
	path := s.writeFile("words.txt", []byte{'c', 'a', 'f', 0xe9, '\n'})
	items, err := LoadFile(path)
	s.Require().NoError(err)
	s.Equal([]any{"café"}, items)
}

func (s *inputTestSuite) TestLoadStripsByteOrderMark() {
	path := s.writeFile("words.txt", append([]byte{0xef, 0xbb, 0xbf}, []byte("föo\n")...))
	items, err := LoadFile(path)
	s.Require().NoError(err)
	s.Equal([]any{"föo"}, items)
}

func (s *inputTestSuite) TestLoadMissingFile() {
	_, err := LoadFile(filepath.Join(s.dirPath, "missing.json"))
	s.Require().Error(err)
	s.Equal(util.ERROR_BAD_INPUT_PATH, util.CodeFor(err))
}

func (s *inputTestSuite) TestLoadBadJSON() {
	path := s.writeFile("broken.json", []byte(`{"not": "an array"}`))
	_, err := LoadFile(path)
	s.Require().Error(err)
	s.Equal(util.ERROR_BAD_INPUT_CONTENT, util.CodeFor(err))
}

func (s *inputTestSuite) TestLoadKeepsPathOrder() {
	first := s.writeFile("first.txt", []byte("1\n2\n"))
	second := s.writeFile("second.json", []byte(`["x"]`))
	third := s.writeFile("third.txt", []byte("3\n"))

	items, err := Load([]string{first, second, third}, 2)
	s.Require().NoError(err)
	s.Equal([]any{1, 2, "x", 3}, items)
}

func (s *inputTestSuite) TestLoadFailsOnAnyFile() {
	first := s.writeFile("first.txt", []byte("1\n"))
	_, err := Load([]string{first, filepath.Join(s.dirPath, "nope.txt")}, 4)
	s.Equal(util.ERROR_BAD_INPUT_PATH, util.CodeFor(err))
}

func (s *inputTestSuite) TestLoadNothing() {
	items, err := Load(nil, 1)
	s.NoError(err)
	s.Nil(items)
}

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		token string
		want  any
	}{
		{"42", 42},
		{" -7 ", -7},
		{"4.5", 4.5},
		{"1e3", 1000.0},
		{"apple", "apple"},
		{" two words ", "two words"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLiteral(tt.token))
		})
	}
}
