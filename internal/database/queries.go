package database

import (
	"encoding/json"
	"strings"
)

// UpsertUserArgs are the GitHub account fields mirrored into users.
type UpsertUserArgs struct {
	ID        int64
	Login     string
	AvatarURL string
}

// UpsertBulletinArgs is one owner's encoded bulletin.
type UpsertBulletinArgs struct {
	UserID int64
	Data   json.RawMessage
}

var UpsertUserQuery = strings.Join([]string{
	"INSERT INTO users (id, login, avatar_url)",
	"VALUES ($1, $2, $3)",
	"ON CONFLICT (id)",
	"DO UPDATE SET login = EXCLUDED.login, avatar_url = EXCLUDED.avatar_url, updated_at = NOW()",
}, " ")

var UpsertBulletinQuery = strings.Join([]string{
	"INSERT INTO bulletins (user_id, data)",
	"VALUES ($1, $2::jsonb)",
	"ON CONFLICT (user_id)",
	"DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()",
}, " ")

var BulletinByUserIDQuery = strings.Join([]string{
	"SELECT data FROM bulletins",
	"WHERE user_id=$1",
}, " ")

// DeleteUserQuery also drops the bulletin through ON DELETE CASCADE.
var DeleteUserQuery = strings.Join([]string{
	"DELETE FROM users",
	"WHERE id=$1",
}, " ")
