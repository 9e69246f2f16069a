package actor

import (
	"context"
	"encoding/json"

	"github.com/dasu-rpg/leveling-api/internal/entities/dasu"
	"github.com/dasu-rpg/leveling-api/internal/errors"
	"github.com/dasu-rpg/leveling-api/internal/pkg/clock"
	redisclient "github.com/dasu-rpg/leveling-api/internal/redis"
	redis "github.com/redis/go-redis/v9"
)

const (
	actorKeyPrefix    = "actor:"
	playerIndexPrefix = "actor:player:"

	// Error messages
	errActorNil      = "actor cannot be nil"
	errActorIDEmpty  = "actor ID cannot be empty"
	errPlayerIDEmpty = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis actor repository.
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

// NewRedis creates a new Redis-backed actor repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
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
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	key := actorKeyPrefix + input.Actor.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("actor with ID %s already exists", input.Actor.ID)
	}

	now := r.clock.Now().Unix()
	input.Actor.CreatedAt = now
	input.Actor.UpdatedAt = now
	input.Actor.EnsurePlan()

	data, err := json.Marshal(input.Actor)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // No TTL for actors
	if input.Actor.PlayerID != "" {
		pipe.SAdd(ctx, playerIndexPrefix+input.Actor.PlayerID, input.Actor.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create actor")
	}

	return &CreateOutput{Actor: input.Actor}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	actor, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Actor: actor}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	key := actorKeyPrefix + input.Actor.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("actor with ID %s not found", input.Actor.ID)
	}

	input.Actor.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Actor)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update actor")
	}

	return &UpdateOutput{Actor: input.Actor}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	actor, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, actorKeyPrefix+input.ID)
	if actor.PlayerID != "" {
		pipe.SRem(ctx, playerIndexPrefix+actor.PlayerID, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete actor")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, playerIndexPrefix+input.PlayerID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read player index")
	}

	actors := make([]*dasu.Actor, 0, len(ids))
	for _, id := range ids {
		actor, err := r.load(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				// Stale index entry; skip it
				continue
			}
			return nil, err
		}
		actors = append(actors, actor)
	}

	return &ListByPlayerIDOutput{Actors: actors}, nil
}

func (r *redisRepository) AddItems(ctx context.Context, input AddItemsInput) (*AddItemsOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}
	if len(input.Items) == 0 {
		return nil, errors.InvalidArgument("items cannot be empty")
	}
	for _, item := range input.Items {
		if item == nil || item.ID == "" {
			return nil, errors.InvalidArgument("item ID cannot be empty")
		}
	}

	actor, err := r.load(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	actor.Items = append(actor.Items, input.Items...)

	if err := r.store(ctx, actor); err != nil {
		return nil, err
	}

	return &AddItemsOutput{Actor: actor}, nil
}

func (r *redisRepository) RemoveItems(ctx context.Context, input RemoveItemsInput) (*RemoveItemsOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}
	if len(input.ItemIDs) == 0 {
		return nil, errors.InvalidArgument("item IDs cannot be empty")
	}

	actor, err := r.load(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	actor.RemoveItems(input.ItemIDs...)

	if err := r.store(ctx, actor); err != nil {
		return nil, err
	}

	return &RemoveItemsOutput{Actor: actor}, nil
}

// load fetches and unmarshals an actor document
func (r *redisRepository) load(ctx context.Context, id string) (*dasu.Actor, error) {
	data, err := r.client.Get(ctx, actorKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("actor with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get actor")
	}

	var actor dasu.Actor
	if err := json.Unmarshal([]byte(data), &actor); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal actor")
	}
	actor.EnsurePlan()

	return &actor, nil
}

// store marshals and writes an actor document, stamping UpdatedAt
func (r *redisRepository) store(ctx context.Context, actor *dasu.Actor) error {
	actor.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(actor)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal actor")
	}

	if err := r.client.Set(ctx, actorKeyPrefix+actor.ID, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store actor")
	}
	return nil
}
