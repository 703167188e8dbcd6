// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getBlob = `SELECT data FROM blobs WHERE key = ?;`

	putBlob = `
		INSERT INTO blobs (key, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at;`

	deleteBlob = `DELETE FROM blobs WHERE key = ?;`

	listBlobKeys = `SELECT key FROM blobs ORDER BY key;`

	getSession = `
		SELECT user_id, login, access_token, expires_at, updated_at
		FROM session
		WHERE id = 1;`

	saveSession = `
		INSERT INTO session (id, user_id, login, access_token, expires_at, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id = excluded.user_id,
			login = excluded.login,
			access_token = excluded.access_token,
			expires_at = excluded.expires_at,
			updated_at = excluded.updated_at;`

	clearSession = `DELETE FROM session WHERE id = 1;`
)
