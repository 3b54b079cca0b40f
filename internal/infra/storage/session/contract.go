package session

import "github.com/m1shk4/HMS-AppointmentGateway/pkg/dbmetrics"

// DBExecutor is the database handle the repository runs queries on.
// Satisfied by *sql.DB and the metrics-wrapped *dbmetrics.DB.
type DBExecutor = dbmetrics.DBExecutor
