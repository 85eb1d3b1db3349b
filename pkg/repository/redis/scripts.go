package redis

import "github.com/redis/go-redis/v9"

const ambiguousReply = "AMBIGUOUS"

// updateScript replaces a document only when its id is already present.
var updateScript = redis.NewScript(`
local key = KEYS[1]
local id = ARGV[1]
local doc = ARGV[2]

if redis.call('HEXISTS', key, id) == 1 then
	redis.call('HSET', key, id, doc)
	return 1
end

return 0
`)

// incrementScript finds the single document matching every equality condition in ARGV[1],
// adds ARGV[3] to its ARGV[2] field and stores it back. With no match it stores the seed
// document ARGV[5] under ARGV[4]. The whole scan runs atomically inside Redis.
var incrementScript = redis.NewScript(`
local key = KEYS[1]
local conditions = cjson.decode(ARGV[1])
local field = ARGV[2]
local delta = tonumber(ARGV[3])
local seedID = ARGV[4]
local seed = ARGV[5]

local foundID = nil
local found = nil
local all = redis.call('HGETALL', key)
for i = 1, #all, 2 do
	local doc = cjson.decode(all[i + 1])
	local matched = true
	for k, v in pairs(conditions) do
		if doc[k] ~= v then
			matched = false
			break
		end
	end
	if matched then
		if found then
			return redis.error_reply('AMBIGUOUS')
		end
		foundID = all[i]
		found = doc
	end
end

if not found then
	redis.call('HSET', key, seedID, seed)
	return seed
end

found[field] = (tonumber(found[field]) or 0) + delta
local encoded = cjson.encode(found)
redis.call('HSET', key, foundID, encoded)
return encoded
`)
