package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (id, name, email, password, currency, monthly_budget, created_at, updated_at)
		VALUES (:id, :name, :email, :password, :currency, :monthly_budget, :created_at, :updated_at)
	`

	queryGetUserByEmail = `
		SELECT id, name, email, password, currency, monthly_budget, created_at, updated_at
		FROM users
		WHERE email = :email
	`

	queryGetUserByID = `
		SELECT id, name, email, password, currency, monthly_budget, created_at, updated_at
		FROM users
		WHERE id = :id
	`
)
