// Package main runs the development user service used by userdeck during
// development and tests. It serves the dummyapi.io-compatible user API
// described in internal/devserver.
//
// Configuration (environment, a .env file is loaded first if present)
//
//	USERAPI_ADDR             listen address (default :8080)
//	USERAPI_APP_IDS          comma-separated accepted app-ids (default: any)
//	USERAPI_SEED             number of generated users on start (default 60)
//	USERAPI_DATABASE_URL     PostgreSQL URL; in-memory storage when empty
//	USERAPI_ALLOWED_ORIGINS  comma-separated CORS origins (default *)
//	LOG_LEVEL, LOG_FORMAT    logging level and text|json format
//
// With PostgreSQL, seeding only happens when the table is empty.
package main
