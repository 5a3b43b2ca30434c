package model

type QueryMethod string

const (
	QueryMethodEqual     QueryMethod = "equal"
	QueryMethodOrderAsc  QueryMethod = "orderAsc"
	QueryMethodOrderDesc QueryMethod = "orderDesc"
	QueryMethodLimit     QueryMethod = "limit"
)

// Атрибуты коллекции files, по которым разрешены запросы
const (
	AttributeID        = "$id"
	AttributeAccountID = "accountId"
	AttributeOwner     = "owner"
	AttributeType      = "type"
	AttributeName      = "name"
	AttributeCreatedAt = "$createdAt"
	AttributeUpdatedAt = "$updatedAt"
)

// Query : предикат запроса к хранилищу документов.
// Equal с несколькими значениями означает вхождение в множество.
type Query struct {
	Method    QueryMethod
	Attribute string
	Values    []string
	Limit     int
}

func Equal(attribute string, values ...string) Query {
	return Query{Method: QueryMethodEqual, Attribute: attribute, Values: values}
}

func OrderAsc(attribute string) Query {
	return Query{Method: QueryMethodOrderAsc, Attribute: attribute}
}

func OrderDesc(attribute string) Query {
	return Query{Method: QueryMethodOrderDesc, Attribute: attribute}
}

func Limit(limit int) Query {
	return Query{Method: QueryMethodLimit, Limit: limit}
}
