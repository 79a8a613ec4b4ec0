package view

const eventsTemplate = `{{range .}}<div class="event-card fade-in" data-event-id="{{.ID}}">
	<div class="event-header">
		<div>
			<div class="event-title">{{.Title}}</div>
			<div class="event-date">{{.EventAtLabel}}</div>
		</div>
	</div>
	<div class="event-stats">
		<div class="stat">
			<div class="stat-value">{{.TotalSeats}}</div>
			<div class="stat-label">Total seats</div>
		</div>
		<div class="stat">
			<div class="stat-value">{{.AvailableSeats}}</div>
			<div class="stat-label">Available</div>
		</div>
		<div class="stat">
			<div class="stat-value">{{.ConfirmedCount}}</div>
			<div class="stat-label">Confirmed</div>
		</div>
		<div class="stat">
			<div class="stat-value">{{.PendingCount}}</div>
			<div class="stat-label">Pending</div>
		</div>
	</div>
	{{if and .ShowBookings .Bookings}}<div class="bookings-list">
		<h4>Bookings:</h4>
		{{range .Bookings}}<div class="booking-card">
			<div class="booking-info">
				<div class="booking-id">ID: {{.ShortID}}...</div>
				<div class="booking-details">Seats: {{.PlacesCount}} | Telegram ID: {{.TelegramID}} | Created: {{.CreatedAtLabel}}</div>
			</div>
			<div class="booking-status {{.StatusClass}}">{{.StatusLabel}}</div>
		</div>
		{{end}}
	</div>
	{{end}}
	<div class="event-actions">
		{{if .ShowBookings}}<button class="btn btn-danger btn-small" data-action="cancel" data-event-id="{{.ID}}">Cancel booking</button>
		{{else}}<button class="btn btn-primary btn-small" data-action="book" data-event-id="{{.ID}}">Book</button>
		<button class="btn btn-secondary btn-small" data-action="confirm" data-event-id="{{.ID}}">Confirm booking</button>
		{{end}}
	</div>
</div>
{{end}}`
