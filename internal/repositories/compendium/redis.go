package compendium

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/emberhollow/character-api/internal/entities/ember"
	"github.com/emberhollow/character-api/internal/errors"
	redisclient "github.com/emberhollow/character-api/internal/redis"
)

// Document kinds, used as key segments: compendium:<kind>:<id>
const (
	kindAncestry = "ancestry"
	kindCulture  = "culture"
	kindTrait    = "trait"
	kindModule   = "module"
	kindItem     = "item"

	keyPrefix = "compendium:"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis compendium repository.
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a new Redis-backed compendium repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) get(ctx context.Context, kind, id string, target any) error {
	if id == "" {
		return errors.InvalidArgumentf("%s ID cannot be empty", kind)
	}

	result, err := r.client.Get(ctx, keyPrefix+kind+":"+id).Result()
	if err != nil {
		if err == redis.Nil {
			return errors.NotFoundf("%s with ID %s not found", kind, id)
		}
		return errors.Wrapf(err, "failed to get %s", kind)
	}

	if err := json.Unmarshal([]byte(result), target); err != nil {
		return errors.Wrapf(err, "failed to unmarshal %s", kind)
	}
	return nil
}

func (r *redisRepository) put(ctx context.Context, kind, id string, doc any) error {
	if id == "" {
		return errors.InvalidArgumentf("%s ID cannot be empty", kind)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", kind)
	}

	if err := r.client.Set(ctx, keyPrefix+kind+":"+id, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store %s", kind)
	}
	return nil
}

func (r *redisRepository) GetAncestry(ctx context.Context, input GetAncestryInput) (*GetAncestryOutput, error) {
	var doc ember.Ancestry
	if err := r.get(ctx, kindAncestry, input.ID, &doc); err != nil {
		return nil, err
	}
	return &GetAncestryOutput{Ancestry: &doc}, nil
}

func (r *redisRepository) PutAncestry(ctx context.Context, input PutAncestryInput) (*PutAncestryOutput, error) {
	if input.Ancestry == nil {
		return nil, errors.InvalidArgument("ancestry cannot be nil")
	}
	if err := r.put(ctx, kindAncestry, input.Ancestry.ID, input.Ancestry); err != nil {
		return nil, err
	}
	return &PutAncestryOutput{}, nil
}

func (r *redisRepository) GetCulture(ctx context.Context, input GetCultureInput) (*GetCultureOutput, error) {
	var doc ember.Culture
	if err := r.get(ctx, kindCulture, input.ID, &doc); err != nil {
		return nil, err
	}
	return &GetCultureOutput{Culture: &doc}, nil
}

func (r *redisRepository) PutCulture(ctx context.Context, input PutCultureInput) (*PutCultureOutput, error) {
	if input.Culture == nil {
		return nil, errors.InvalidArgument("culture cannot be nil")
	}
	if err := r.put(ctx, kindCulture, input.Culture.ID, input.Culture); err != nil {
		return nil, err
	}
	return &PutCultureOutput{}, nil
}

func (r *redisRepository) GetTrait(ctx context.Context, input GetTraitInput) (*GetTraitOutput, error) {
	var doc ember.Trait
	if err := r.get(ctx, kindTrait, input.ID, &doc); err != nil {
		return nil, err
	}
	return &GetTraitOutput{Trait: &doc}, nil
}

func (r *redisRepository) PutTrait(ctx context.Context, input PutTraitInput) (*PutTraitOutput, error) {
	if input.Trait == nil {
		return nil, errors.InvalidArgument("trait cannot be nil")
	}
	if err := r.put(ctx, kindTrait, input.Trait.ID, input.Trait); err != nil {
		return nil, err
	}
	return &PutTraitOutput{}, nil
}

func (r *redisRepository) GetModule(ctx context.Context, input GetModuleInput) (*GetModuleOutput, error) {
	var doc ember.Module
	if err := r.get(ctx, kindModule, input.ID, &doc); err != nil {
		return nil, err
	}
	return &GetModuleOutput{Module: &doc}, nil
}

func (r *redisRepository) PutModule(ctx context.Context, input PutModuleInput) (*PutModuleOutput, error) {
	if input.Module == nil {
		return nil, errors.InvalidArgument("module cannot be nil")
	}
	if err := r.put(ctx, kindModule, input.Module.ID, input.Module); err != nil {
		return nil, err
	}
	return &PutModuleOutput{}, nil
}

func (r *redisRepository) GetItem(ctx context.Context, input GetItemInput) (*GetItemOutput, error) {
	var doc ember.Item
	if err := r.get(ctx, kindItem, input.ID, &doc); err != nil {
		return nil, err
	}
	return &GetItemOutput{Item: &doc}, nil
}

func (r *redisRepository) PutItem(ctx context.Context, input PutItemInput) (*PutItemOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument("item cannot be nil")
	}
	if err := r.put(ctx, kindItem, input.Item.ID, input.Item); err != nil {
		return nil, err
	}
	return &PutItemOutput{}, nil
}
