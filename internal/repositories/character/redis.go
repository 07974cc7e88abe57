package character

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/emberhollow/character-api/internal/entities/ember"
	"github.com/emberhollow/character-api/internal/errors"
	"github.com/emberhollow/character-api/internal/pkg/clock"
	redisclient "github.com/emberhollow/character-api/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	playerIndexPrefix  = "character:player:"

	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errPlayerIDEmpty    = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKeyPrefix + input.Character.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	now := r.clock.Now().Unix()
	input.Character.CreatedAt = now
	input.Character.UpdatedAt = now

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // characters never expire
	if input.Character.PlayerID != "" {
		pipe.SAdd(ctx, playerIndexPrefix+input.Character.PlayerID, input.Character.ID)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, characterKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var c ember.Character
	if err := json.Unmarshal([]byte(result), &c); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character")
	}

	return &GetOutput{Character: &c}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKeyPrefix + input.Character.ID

	existing, err := r.Get(ctx, GetInput{ID: input.Character.ID})
	if err != nil {
		return nil, err
	}

	input.Character.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)

	if existing.Character.PlayerID != input.Character.PlayerID {
		if existing.Character.PlayerID != "" {
			pipe.SRem(ctx, playerIndexPrefix+existing.Character.PlayerID, input.Character.ID)
		}
		if input.Character.PlayerID != "" {
			pipe.SAdd(ctx, playerIndexPrefix+input.Character.PlayerID, input.Character.ID)
		}
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKeyPrefix+input.ID)
	if getOutput.Character.PlayerID != "" {
		pipe.SRem(ctx, playerIndexPrefix+getOutput.Character.PlayerID, input.ID)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	indexKey := playerIndexPrefix + input.PlayerID

	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters from index %s", indexKey)
	}

	out := &ListByPlayerIDOutput{Characters: make([]*ember.Character, 0, len(ids))}
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// Clean up dangling index entries instead of failing the list.
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "character not found, cleaning up index",
					"character_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get character %s", id)
		}
		out.Characters = append(out.Characters, getOutput.Character)
	}

	return out, nil
}
