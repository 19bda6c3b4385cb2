package repository

// Schema definitions for the Harrier database.
// Compatible with both SQLite and PostgreSQL.

const schemaTradelines = `
CREATE TABLE IF NOT EXISTS tradelines (
    id TEXT NOT NULL,
    tenant_id TEXT NOT NULL,
    furnisher TEXT,
    account_type TEXT,
    input TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    PRIMARY KEY (id, tenant_id)
);

CREATE INDEX IF NOT EXISTS idx_tradelines_tenant ON tradelines(tenant_id);
CREATE INDEX IF NOT EXISTS idx_tradelines_furnisher ON tradelines(tenant_id, furnisher);
`

// schemaReports stores complete analysis reports. furnisher and flag_count
// are denormalized so the history service can count flagged reports
// without deserializing every report body.
const schemaReports = `
CREATE TABLE IF NOT EXISTS reports (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    furnisher TEXT,
    flag_count INTEGER NOT NULL DEFAULT 0,
    critical_count INTEGER NOT NULL DEFAULT 0,
    overall_risk INTEGER NOT NULL DEFAULT 0,
    report TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reports_tenant ON reports(tenant_id);
CREATE INDEX IF NOT EXISTS idx_reports_furnisher ON reports(tenant_id, furnisher, created_at);
CREATE INDEX IF NOT EXISTS idx_reports_created ON reports(tenant_id, created_at);
`

const schemaCustomRules = `
CREATE TABLE IF NOT EXISTS custom_rules (
    id TEXT NOT NULL,
    tenant_id TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT,
    version TEXT NOT NULL,
    expression TEXT NOT NULL,
    severity TEXT NOT NULL,
    willfulness_score INTEGER NOT NULL DEFAULT 0,
    statutory_min REAL NOT NULL DEFAULT 0,
    statutory_max REAL NOT NULL DEFAULT 0,
    citation TEXT,
    remediation TEXT,
    enabled INTEGER NOT NULL DEFAULT 1,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    PRIMARY KEY (id, tenant_id, version)
);

CREATE INDEX IF NOT EXISTS idx_custom_rules_tenant ON custom_rules(tenant_id);
CREATE INDEX IF NOT EXISTS idx_custom_rules_enabled ON custom_rules(tenant_id, enabled);
`

// AllSchemas returns all schema statements in order.
func AllSchemas() []string {
	return []string{
		schemaTradelines,
		schemaReports,
		schemaCustomRules,
	}
}
