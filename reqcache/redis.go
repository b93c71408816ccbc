// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package reqcache

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redis/v8"

	"github.com/czcorpus/declinator/declension"
)

type RedisCache struct {
	conf         *Conf
	redisClient  *redis.Client
	redisContext context.Context
}

func (rc *RedisCache) createCacheID(phrase string, animate bool) string {
	return fmt.Sprintf("declinator:cache:%s", createItemID(phrase, animate))
}

func (rc *RedisCache) Get(phrase string, animate bool) (declension.Forms, error) {
	var ans declension.Forms
	cacheID := rc.createCacheID(phrase, animate)
	val, err := rc.redisClient.Get(rc.redisContext, cacheID).Result()
	if err == redis.Nil {
		return ans, ErrCacheMiss

	} else if err != nil {
		return ans, err
	}
	_, err = rc.redisClient.Expire(
		rc.redisContext, cacheID, time.Duration(rc.conf.TTLSecs)*time.Second).Result()
	if err != nil {
		return ans, err
	}
	err = sonic.Unmarshal([]byte(val), &ans)
	return ans, err
}

func (rc *RedisCache) Set(phrase string, animate bool, forms declension.Forms) error {
	raw, err := sonic.Marshal(forms)
	if err != nil {
		return err
	}
	_, err = rc.redisClient.Set(
		rc.redisContext,
		rc.createCacheID(phrase, animate),
		string(raw),
		time.Duration(rc.conf.TTLSecs)*time.Second,
	).Result()
	return err
}

func NewRedisCache(ctx context.Context, conf *Conf) *RedisCache {
	return &RedisCache{
		conf: conf,
		redisClient: redis.NewClient(&redis.Options{
			Addr: conf.RedisAddr,
			DB:   conf.RedisDB,
		}),
		redisContext: ctx,
	}
}
