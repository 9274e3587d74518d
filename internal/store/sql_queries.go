// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package store

const (
	createAccount = `
		INSERT INTO accounts (account_id, user_id, email, name, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING account_id, user_id, email, name, password_hash, created_at;`

	findAccountByEmail = `
		SELECT account_id, user_id, email, name, password_hash, created_at
		FROM accounts
		WHERE email = $1;`

	getAccount = `
		SELECT account_id, user_id, email, name, password_hash, created_at
		FROM accounts
		WHERE account_id = $1;`
)

const (
	profileColumns = `
		profile_id,
		account_id,
		user_id,
		is_primary,
		name,
		preferred_name,
		email,
		birthday,
		deceased,
		date_of_death,
		address,
		phone,
		photo_url,
		source_user_id,
		is_local_only,
		sync_connection_id`

	getProfile = `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE profile_id = $1;`

	getPrimaryProfile = `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE user_id = $1 AND is_primary = true AND source_user_id IS NULL;`

	listProfiles = `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE account_id = $1
		ORDER BY profile_id;`

	saveProfile = `
		INSERT INTO profiles (
			profile_id,
			account_id,
			user_id,
			is_primary,
			name,
			preferred_name,
			email,
			birthday,
			deceased,
			date_of_death,
			address,
			phone,
			photo_url,
			source_user_id,
			is_local_only,
			sync_connection_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (profile_id) DO UPDATE SET
			name               = excluded.name,
			preferred_name     = excluded.preferred_name,
			email              = excluded.email,
			birthday           = excluded.birthday,
			deceased           = excluded.deceased,
			date_of_death      = excluded.date_of_death,
			address            = excluded.address,
			phone              = excluded.phone,
			photo_url          = excluded.photo_url,
			source_user_id     = excluded.source_user_id,
			is_local_only      = excluded.is_local_only,
			sync_connection_id = excluded.sync_connection_id,
			updated_at         = NOW();`

	deleteProfile = `
		DELETE FROM profiles
		WHERE profile_id = $1;`

	clearSharedCoreFields = `
		UPDATE profiles SET
			address    = NULL,
			phone      = NULL,
			photo_url  = NULL,
			updated_at = NOW()
		WHERE profile_id = $1;`

	markProfileLocalOnly = `
		UPDATE profiles SET
			is_local_only      = true,
			source_user_id     = NULL,
			sync_connection_id = NULL,
			updated_at         = NOW()
		WHERE profile_id = $1;`
)

const (
	detailColumns = `detail_id, account_id, profile_id, category, label, value`

	getDetail = `
		SELECT ` + detailColumns + `
		FROM profile_details
		WHERE detail_id = $1;`

	listDetailsByAccount = `
		SELECT ` + detailColumns + `
		FROM profile_details
		WHERE account_id = $1
		ORDER BY detail_id;`

	saveDetail = `
		INSERT INTO profile_details (detail_id, account_id, profile_id, category, label, value)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (detail_id) DO UPDATE SET
			category   = excluded.category,
			label      = excluded.label,
			value      = excluded.value,
			updated_at = NOW();`

	deleteDetail = `
		DELETE FROM profile_details
		WHERE detail_id = $1;`
)

const (
	connectionColumns = `
		connection_id,
		status,
		account_a, user_a, source_profile_a, synced_profile_a,
		account_b, user_b, source_profile_b, synced_profile_b,
		created_at,
		severed_at`

	createConnection = `
		INSERT INTO sync_connections (
			connection_id,
			status,
			account_a, user_a, source_profile_a, synced_profile_a,
			account_b, user_b, source_profile_b, synced_profile_b,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	getConnection = `
		SELECT ` + connectionColumns + `
		FROM sync_connections
		WHERE connection_id = $1;`

	listActiveConnectionsForUser = `
		SELECT ` + connectionColumns + `
		FROM sync_connections
		WHERE status = 'active' AND (user_a = $1 OR user_b = $1)
		ORDER BY created_at;`

	severConnection = `
		UPDATE sync_connections SET
			status     = 'severed',
			severed_at = $2
		WHERE connection_id = $1 AND status = 'active';`
)

const (
	getSharingPreference = `
		SELECT is_shared
		FROM sharing_preferences
		WHERE source_profile_id = $1 AND target_user_id = $2 AND category = $3;`

	upsertSharingPreference = `
		INSERT INTO sharing_preferences (source_profile_id, target_user_id, category, is_shared)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (source_profile_id, target_user_id, category) DO UPDATE SET
			is_shared = excluded.is_shared;`

	saveDetailMapping = `
		INSERT INTO detail_sync_mappings (connection_id, source_detail_id, synced_detail_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (connection_id, source_detail_id) DO UPDATE SET
			synced_detail_id = excluded.synced_detail_id;`

	listMappingsBySourceDetail = `
		SELECT connection_id, source_detail_id, synced_detail_id
		FROM detail_sync_mappings
		WHERE source_detail_id = $1;`

	listMappingsByConnection = `
		SELECT connection_id, source_detail_id, synced_detail_id
		FROM detail_sync_mappings
		WHERE connection_id = $1;`

	deleteDetailMapping = `
		DELETE FROM detail_sync_mappings
		WHERE connection_id = $1 AND source_detail_id = $2;`
)

const (
	upsertEntity = `
		INSERT INTO entities (family, entity_id, account_id, payload, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (family, entity_id) DO UPDATE SET
			payload    = excluded.payload,
			updated_at = excluded.updated_at
		RETURNING family, entity_id, account_id, payload, updated_at;`

	listEntities = `
		SELECT family, entity_id, account_id, payload, updated_at
		FROM entities
		WHERE family = $1 AND account_id = $2
		ORDER BY entity_id;`

	deleteEntity = `
		DELETE FROM entities
		WHERE family = $1 AND entity_id = $2 AND account_id = $3;`
)
