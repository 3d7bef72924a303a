package sqlite

// schema mirrors the relational layout of the entity store: names are UNIQUE
// per collection and every reference is a FOREIGN KEY.
const schema = `
CREATE TABLE partners (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	partner_name TEXT NOT NULL UNIQUE
);

CREATE TABLE companies (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	company_name TEXT NOT NULL UNIQUE
);

CREATE TABLE employees (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	employee_name TEXT NOT NULL UNIQUE,
	company_id    INTEGER NOT NULL,
	FOREIGN KEY (company_id) REFERENCES companies (id)
);

CREATE TABLE contacts (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	employee_id  INTEGER NOT NULL,
	partner_id   INTEGER NOT NULL,
	contact_type TEXT NOT NULL CHECK (contact_type IN ('email', 'call', 'coffee')),
	FOREIGN KEY (employee_id) REFERENCES employees (id),
	FOREIGN KEY (partner_id) REFERENCES partners (id)
);

CREATE INDEX idx_employees_company ON employees (company_id);
CREATE INDEX idx_contacts_employee ON contacts (employee_id);
`

const (
	queryPartnerID  = `SELECT id FROM partners WHERE partner_name = ?`
	queryCompanyID  = `SELECT id FROM companies WHERE company_name = ?`
	queryEmployeeID = `SELECT id FROM employees WHERE employee_name = ?`

	insertPartner  = `INSERT INTO partners (partner_name) VALUES (?)`
	insertCompany  = `INSERT INTO companies (company_name) VALUES (?)`
	insertEmployee = `INSERT INTO employees (employee_name, company_id) VALUES (?, ?)`
	insertContact  = `INSERT INTO contacts (employee_id, partner_id, contact_type) VALUES (?, ?, ?)`

	queryCompanies = `SELECT id, company_name FROM companies ORDER BY company_name`

	queryContactCounts = `
SELECT partners.id, partners.partner_name, COUNT(contacts.id)
FROM contacts
INNER JOIN employees ON contacts.employee_id = employees.id AND employees.company_id = ?
INNER JOIN partners ON contacts.partner_id = partners.id
GROUP BY partners.id, partners.partner_name
ORDER BY partners.id`

	queryStats = `
SELECT
	(SELECT COUNT(*) FROM partners),
	(SELECT COUNT(*) FROM companies),
	(SELECT COUNT(*) FROM employees),
	(SELECT COUNT(*) FROM contacts)`
)
