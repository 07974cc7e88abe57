package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/emberhollow/character-api/internal/entities/ember"
	"github.com/emberhollow/character-api/internal/errors"
	"github.com/emberhollow/character-api/internal/pkg/clock"
	"github.com/emberhollow/character-api/internal/redis"
	character "github.com/emberhollow/character-api/internal/repositories/character"
	"github.com/emberhollow/character-api/internal/testutils"
)

const (
	testCharID   = "char_123"
	testPlayerID = "player_456"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redis.Client
	cleanup func()
	repo    character.Repository
	now     time.Time
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.now = time.Unix(1756600000, 0)
	s.ctx = context.Background()

	repo, err := character.NewRedis(&character.RedisConfig{
		Client: s.client,
		Clock:  &clock.Fixed{T: s.now},
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) testCharacter() *ember.Character {
	return ember.NewCharacter(testCharID, testPlayerID, "Test Hero")
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter()})
	s.Require().NoError(err)
	s.Equal(s.now.Unix(), created.Character.CreatedAt)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: testCharID})
	s.Require().NoError(err)
	s.Equal(testCharID, got.Character.ID)
	s.Equal(testPlayerID, got.Character.PlayerID)
	s.Equal("Test Hero", got.Character.Name)
	s.Equal(1, got.Character.Attributes[ember.AttributePhysique])
	s.Equal(20, got.Character.Resources[ember.ResourceHealth].Current)
}

func (s *RedisRepositoryTestSuite) TestCreate_NilCharacter() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreate_AlreadyExists() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter()})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter()})
	s.Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_missing"})
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter()})
	s.Require().NoError(err)

	updated := s.testCharacter()
	updated.Name = "Renamed Hero"
	updated.Attributes[ember.AttributeFinesse] = 3

	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: updated})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: testCharID})
	s.Require().NoError(err)
	s.Equal("Renamed Hero", got.Character.Name)
	s.Equal(3, got.Character.Attributes[ember.AttributeFinesse])
}

func (s *RedisRepositoryTestSuite) TestUpdate_NotFound() {
	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: s.testCharacter()})
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate_ReindexesOnPlayerChange() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter()})
	s.Require().NoError(err)

	moved := s.testCharacter()
	moved.PlayerID = "player_other"
	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: moved})
	s.Require().NoError(err)

	oldList, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Empty(oldList.Characters)

	newList, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "player_other"})
	s.Require().NoError(err)
	s.Len(newList.Characters, 1)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter()})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: testCharID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: testCharID})
	s.True(errors.IsNotFound(err))

	listed, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Empty(listed.Characters)
}

func (s *RedisRepositoryTestSuite) TestDelete_NotFound() {
	_, err := s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_missing"})
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID() {
	first := s.testCharacter()
	second := ember.NewCharacter("char_456", testPlayerID, "Second Hero")
	other := ember.NewCharacter("char_789", "player_other", "Stranger")

	for _, c := range []*ember.Character{first, second, other} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.Require().NoError(err)
	}

	listed, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Len(listed.Characters, 2)
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID_CleansDanglingIndexEntries() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter()})
	s.Require().NoError(err)

	// Simulate a document deleted out from under the index.
	err = s.client.SAdd(s.ctx, "character:player:"+testPlayerID, "char_gone").Err()
	s.Require().NoError(err)

	listed, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Len(listed.Characters, 1)

	members, err := s.client.SMembers(s.ctx, "character:player:"+testPlayerID).Result()
	s.Require().NoError(err)
	s.Equal([]string{testCharID}, members)
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
