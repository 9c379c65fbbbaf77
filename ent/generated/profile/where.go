// Code generated by ent, DO NOT EDIT.

package profile

import (
	"taskmanager/ent/generated/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldID, id))
}

// ExpoPushToken applies equality check predicate on the "expo_push_token" field. It's identical to ExpoPushTokenEQ.
func ExpoPushToken(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldExpoPushToken, v))
}

// ImageURL applies equality check predicate on the "image_url" field. It's identical to ImageURLEQ.
func ImageURL(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldImageURL, v))
}

// ExpoPushTokenEQ applies the EQ predicate on the "expo_push_token" field.
func ExpoPushTokenEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldExpoPushToken, v))
}

// ExpoPushTokenNEQ applies the NEQ predicate on the "expo_push_token" field.
func ExpoPushTokenNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldExpoPushToken, v))
}

// ExpoPushTokenIn applies the In predicate on the "expo_push_token" field.
func ExpoPushTokenIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldExpoPushToken, vs...))
}

// ExpoPushTokenNotIn applies the NotIn predicate on the "expo_push_token" field.
func ExpoPushTokenNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldExpoPushToken, vs...))
}

// ExpoPushTokenGT applies the GT predicate on the "expo_push_token" field.
func ExpoPushTokenGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldExpoPushToken, v))
}

// ExpoPushTokenGTE applies the GTE predicate on the "expo_push_token" field.
func ExpoPushTokenGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldExpoPushToken, v))
}

// ExpoPushTokenLT applies the LT predicate on the "expo_push_token" field.
func ExpoPushTokenLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldExpoPushToken, v))
}

// ExpoPushTokenLTE applies the LTE predicate on the "expo_push_token" field.
func ExpoPushTokenLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldExpoPushToken, v))
}

// ExpoPushTokenContains applies the Contains predicate on the "expo_push_token" field.
func ExpoPushTokenContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldExpoPushToken, v))
}

// ExpoPushTokenHasPrefix applies the HasPrefix predicate on the "expo_push_token" field.
func ExpoPushTokenHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldExpoPushToken, v))
}

// ExpoPushTokenHasSuffix applies the HasSuffix predicate on the "expo_push_token" field.
func ExpoPushTokenHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldExpoPushToken, v))
}

// ExpoPushTokenIsNil applies the IsNil predicate on the "expo_push_token" field.
func ExpoPushTokenIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldExpoPushToken))
}

// ExpoPushTokenNotNil applies the NotNil predicate on the "expo_push_token" field.
func ExpoPushTokenNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldExpoPushToken))
}

// ExpoPushTokenEqualFold applies the EqualFold predicate on the "expo_push_token" field.
func ExpoPushTokenEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldExpoPushToken, v))
}

// ExpoPushTokenContainsFold applies the ContainsFold predicate on the "expo_push_token" field.
func ExpoPushTokenContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldExpoPushToken, v))
}

// ImageURLEQ applies the EQ predicate on the "image_url" field.
func ImageURLEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldImageURL, v))
}

// ImageURLNEQ applies the NEQ predicate on the "image_url" field.
func ImageURLNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldImageURL, v))
}

// ImageURLIn applies the In predicate on the "image_url" field.
func ImageURLIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldImageURL, vs...))
}

// ImageURLNotIn applies the NotIn predicate on the "image_url" field.
func ImageURLNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldImageURL, vs...))
}

// ImageURLGT applies the GT predicate on the "image_url" field.
func ImageURLGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldImageURL, v))
}

// ImageURLGTE applies the GTE predicate on the "image_url" field.
func ImageURLGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldImageURL, v))
}

// ImageURLLT applies the LT predicate on the "image_url" field.
func ImageURLLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldImageURL, v))
}

// ImageURLLTE applies the LTE predicate on the "image_url" field.
func ImageURLLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldImageURL, v))
}

// ImageURLContains applies the Contains predicate on the "image_url" field.
func ImageURLContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldImageURL, v))
}

// ImageURLHasPrefix applies the HasPrefix predicate on the "image_url" field.
func ImageURLHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldImageURL, v))
}

// ImageURLHasSuffix applies the HasSuffix predicate on the "image_url" field.
func ImageURLHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldImageURL, v))
}

// ImageURLIsNil applies the IsNil predicate on the "image_url" field.
func ImageURLIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldImageURL))
}

// ImageURLNotNil applies the NotNil predicate on the "image_url" field.
func ImageURLNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldImageURL))
}

// ImageURLEqualFold applies the EqualFold predicate on the "image_url" field.
func ImageURLEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldImageURL, v))
}

// ImageURLContainsFold applies the ContainsFold predicate on the "image_url" field.
func ImageURLContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldImageURL, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Profile {
	return predicate.Profile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Profile {
	return predicate.Profile(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.NotPredicates(p))
}
