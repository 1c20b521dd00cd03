package redis

// defaultCatalog is a representative command set spanning string, key,
// hash, set, sorted-set, list, and server-control commands. It is built
// once as a package-level value at package init and cloned per Client.
var defaultCatalog = buildDefaultCatalog()

func buildDefaultCatalog() catalog {
	c := make(catalog)

	reg := func(names []string, verb string, enc encodingKind, shape shaper, shardable, closes bool, filter argsFilter) {
		cmd := &command{verb: verb, encoding: enc, shape: shape, shardable: shardable, closesConn: closes, filter: filter}
		for _, n := range names {
			c[n] = cmd
		}
	}

	// --- connection / server control: non-shardable ---
	reg([]string{"ping"}, "PING", inline, shapePing, false, false, nil)
	reg([]string{"auth"}, "AUTH", inline, shapeStatusOK, false, false, nil)
	reg([]string{"echo"}, "ECHO", bulk, shapeBulk, false, false, nil)
	reg([]string{"quit"}, "QUIT", inline, shapeStatusOK, false, true, nil)
	reg([]string{"select"}, "SELECT", inline, shapeStatusOK, false, false, nil)
	reg([]string{"flushdb"}, "FLUSHDB", inline, shapeStatusOK, false, false, nil)
	reg([]string{"flushall"}, "FLUSHALL", inline, shapeStatusOK, false, false, nil)
	reg([]string{"dbsize"}, "DBSIZE", inline, shapeInteger, false, false, nil)
	reg([]string{"info"}, "INFO", inline, shapeInfo, false, false, nil)
	reg([]string{"slaveof"}, "SLAVEOF", inline, shapeStatusOK, false, false, filterSlaveOf)
	reg([]string{"save"}, "SAVE", inline, shapeStatusOK, false, false, nil)
	reg([]string{"bgsave"}, "BGSAVE", inline, shapeStatusText, false, false, nil)
	reg([]string{"lastsave"}, "LASTSAVE", inline, shapeInteger, false, false, nil)
	reg([]string{"shutdown"}, "SHUTDOWN", inline, shapeStatusOK, false, true, nil)

	// --- multi-key: non-shardable (no single deterministic key) ---
	reg([]string{"mset"}, "MSET", multiBulk, shapeStatusOK, false, false, nil)
	reg([]string{"msetPreserve", "msetnx"}, "MSETNX", multiBulk, shapeBool, false, false, nil)
	reg([]string{"mget"}, "MGET", multiBulk, shapeBulkArray, false, false, nil)
	reg([]string{"keys"}, "KEYS", inline, shapeKeys, false, false, nil)
	reg([]string{"randomKey", "randomkey"}, "RANDOMKEY", inline, shapeRandomKey, false, false, nil)
	reg([]string{"rename"}, "RENAME", inline, shapeStatusOK, false, false, nil)
	reg([]string{"renamePreserve", "renamenx"}, "RENAMENX", inline, shapeBool, false, false, nil)
	reg([]string{"move"}, "MOVE", inline, shapeBool, false, false, nil)
	reg([]string{"smove"}, "SMOVE", multiBulk, shapeBool, false, false, nil)

	// --- single-key: shardable (the default) ---
	reg([]string{"get"}, "GET", inline, shapeBulk, true, false, nil)
	reg([]string{"set"}, "SET", bulk, shapeStatusOK, true, false, nil)
	reg([]string{"getSet", "getset"}, "GETSET", bulk, shapeBulk, true, false, nil)
	reg([]string{"setPreserve", "setnx"}, "SETNX", bulk, shapeBool, true, false, nil)
	reg([]string{"setex"}, "SETEX", bulk, shapeStatusOK, true, false, nil)
	reg([]string{"append"}, "APPEND", bulk, shapeInteger, true, false, nil)
	reg([]string{"strlen"}, "STRLEN", inline, shapeInteger, true, false, nil)
	reg([]string{"exists"}, "EXISTS", inline, shapeBool, true, false, nil)
	reg([]string{"del"}, "DEL", multiBulk, shapeBool, true, false, nil)
	reg([]string{"type"}, "TYPE", inline, shapeStatusText, true, false, nil)
	reg([]string{"expire"}, "EXPIRE", inline, shapeBool, true, false, nil)
	reg([]string{"expireAt", "expireat"}, "EXPIREAT", inline, shapeBool, true, false, nil)
	reg([]string{"ttl"}, "TTL", inline, shapeInteger, true, false, nil)
	reg([]string{"persist"}, "PERSIST", inline, shapeBool, true, false, nil)
	reg([]string{"pttl"}, "PTTL", inline, shapeInteger, true, false, nil)
	reg([]string{"incr"}, "INCR", inline, shapeInteger, true, false, nil)
	reg([]string{"incrBy", "incrby"}, "INCRBY", inline, shapeInteger, true, false, nil)
	reg([]string{"decr"}, "DECR", inline, shapeInteger, true, false, nil)
	reg([]string{"decrBy", "decrby"}, "DECRBY", inline, shapeInteger, true, false, nil)
	reg([]string{"sort"}, "SORT", inline, shapeBulkArray, true, false, filterSort)

	// --- hash family: shardable on the hash key ---
	reg([]string{"hget"}, "HGET", inline, shapeBulk, true, false, nil)
	reg([]string{"hset"}, "HSET", bulk, shapeBool, true, false, nil)
	reg([]string{"hsetnx"}, "HSETNX", bulk, shapeBool, true, false, nil)
	reg([]string{"hmset"}, "HMSET", multiBulk, shapeStatusOK, true, false, nil)
	reg([]string{"hmget"}, "HMGET", multiBulk, shapeBulkArray, true, false, nil)
	reg([]string{"hgetall"}, "HGETALL", inline, shapeBulkArray, true, false, nil)
	reg([]string{"hdel"}, "HDEL", multiBulk, shapeInteger, true, false, nil)
	reg([]string{"hexists"}, "HEXISTS", inline, shapeBool, true, false, nil)
	reg([]string{"hlen"}, "HLEN", inline, shapeInteger, true, false, nil)
	reg([]string{"hkeys"}, "HKEYS", inline, shapeBulkArray, true, false, nil)
	reg([]string{"hvals"}, "HVALS", inline, shapeBulkArray, true, false, nil)
	reg([]string{"hincrBy", "hincrby"}, "HINCRBY", inline, shapeInteger, true, false, nil)

	// --- set family: shardable on the set key ---
	reg([]string{"sadd"}, "SADD", multiBulk, shapeBool, true, false, nil)
	reg([]string{"srem"}, "SREM", multiBulk, shapeBool, true, false, nil)
	reg([]string{"sismember"}, "SISMEMBER", bulk, shapeBool, true, false, nil)
	reg([]string{"smembers"}, "SMEMBERS", inline, shapeBulkArray, true, false, nil)
	reg([]string{"scard"}, "SCARD", inline, shapeInteger, true, false, nil)
	reg([]string{"spop"}, "SPOP", inline, shapeBulk, true, false, nil)
	reg([]string{"srandmember"}, "SRANDMEMBER", inline, shapeBulk, true, false, nil)

	// --- sorted-set family: shardable on the zset key ---
	reg([]string{"zadd"}, "ZADD", multiBulk, shapeBool, true, false, nil)
	reg([]string{"zrem"}, "ZREM", multiBulk, shapeBool, true, false, nil)
	reg([]string{"zscore"}, "ZSCORE", bulk, shapeBulk, true, false, nil)
	reg([]string{"zincrBy", "zincrby"}, "ZINCRBY", bulk, shapeBulk, true, false, nil)
	reg([]string{"zcard"}, "ZCARD", inline, shapeInteger, true, false, nil)
	reg([]string{"zrange"}, "ZRANGE", inline, shapeBulkArray, true, false, nil)
	reg([]string{"zrevrange"}, "ZREVRANGE", inline, shapeBulkArray, true, false, nil)
	reg([]string{"zrank"}, "ZRANK", inline, shapeInteger, true, false, nil)
	reg([]string{"zrevrank"}, "ZREVRANK", inline, shapeInteger, true, false, nil)

	// --- list family: shardable on the list key ---
	reg([]string{"lpush"}, "LPUSH", multiBulk, shapeInteger, true, false, nil)
	reg([]string{"rpush"}, "RPUSH", multiBulk, shapeInteger, true, false, nil)
	reg([]string{"lpop"}, "LPOP", inline, shapeBulk, true, false, nil)
	reg([]string{"rpop"}, "RPOP", inline, shapeBulk, true, false, nil)
	reg([]string{"llen"}, "LLEN", inline, shapeInteger, true, false, nil)
	reg([]string{"lindex"}, "LINDEX", inline, shapeBulk, true, false, nil)
	reg([]string{"lset"}, "LSET", bulk, shapeStatusOK, true, false, nil)
	reg([]string{"lrange"}, "LRANGE", inline, shapeBulkArray, true, false, nil)
	reg([]string{"ltrim"}, "LTRIM", inline, shapeStatusOK, true, false, nil)
	reg([]string{"lrem"}, "LREM", bulk, shapeInteger, true, false, nil)

	return c
}
