package expenseRepository

const (
	queryCreateExpense = `
		INSERT INTO expenses (
			id,
			user_id,
			title,
			amount,
			category,
			description,
			date,
			payment_method,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:title,
			:amount,
			:category,
			:description,
			:date,
			:payment_method,
			:created_at,
			:updated_at
		)
	`

	queryGetExpenseByID = `
		SELECT
			id,
			user_id,
			title,
			amount,
			category,
			description,
			date,
			payment_method,
			created_at,
			updated_at
		FROM expenses
		WHERE id = :id AND user_id = :user_id
	`

	queryUpdateExpense = `
		UPDATE expenses
		SET
			title = :title,
			amount = :amount,
			category = :category,
			description = :description,
			date = :date,
			payment_method = :payment_method,
			updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`

	queryDeleteExpense = `
		DELETE FROM expenses
		WHERE id = :id AND user_id = :user_id
	`
)
