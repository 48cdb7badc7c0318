package model

import "time"

// AdminUser is a company administrator account in the users collection,
// keyed by its auth uid. Superuser accounts additionally manage tenants and
// other admins.
type AdminUser struct {
	UID          string    `bson:"_id" json:"uid"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CompanyID    string    `bson:"company_id,omitempty" json:"companyId,omitempty"`
	Superuser    bool      `bson:"superuser,omitempty" json:"superuser,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`

	SubscriptionStart *time.Time `bson:"subscription_start,omitempty" json:"subscriptionStart,omitempty"`
	SubscriptionEnd   *time.Time `bson:"subscription_end,omitempty" json:"subscriptionEnd,omitempty"`
}
