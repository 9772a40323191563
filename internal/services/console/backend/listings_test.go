package backend

import (
	"context"
	"net/http"
	"net/url"
	"testing"
)

func TestListUsersQueryAndPaging(t *testing.T) {
	t.Parallel()

	fb := newFakeBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET User": jsonReply(200, `{"isSuccess":true,"result":{"data":[
			{"userId":"u1","fullName":"Lan","roleName":"Driver"},
			{"userId":2,"fullName":"Minh","role":{"roleName":"Owner"}},
			{"userId":3,"fullName":"Hoa","role":"Provider"}
		],"totalCount":23}}`),
	})
	client, _ := newTestClient(t, fb, "tok")

	page, err := client.ListUsers(context.Background(), UserQuery{
		Page:          PageRequest{Number: 2, Size: 10},
		Search:        " lan ",
		SortField:     "email",
		SortDirection: "DESC",
	})
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	query, _ := url.ParseQuery(fb.last(t).Query)
	if query.Get("pageNumber") != "2" || query.Get("pageSize") != "10" || query.Get("search") != "lan" || query.Get("sortField") != "email" || query.Get("sortDirection") != "DESC" {
		t.Fatalf("query = %v", query)
	}
	if len(page.Items) != 3 || page.Items[1].ID != "2" || page.Items[1].RoleName != "Owner" || page.Items[2].RoleName != "Provider" {
		t.Fatalf("items = %+v", page.Items)
	}
	if page.TotalCount != 23 || page.TotalPages != 3 || !page.HasNextPage || !page.HasPreviousPage {
		t.Fatalf("paging = %+v", page)
	}
}

func TestListVehiclesEmbedsDocuments(t *testing.T) {
	t.Parallel()

	fb := newFakeBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET Vehicle": jsonReply(200, `{"isSuccess":true,"result":{"data":[
			{"vehicleId":"v1","plateNumber":"51H-123.45","brand":"Isuzu","year":2021,
			 "owner":{"fullName":"Tuan","companyName":"TT Logistics"},
			 "documents":[{"vehicleDocumentId":"vd1","status":"PENDING_REVIEW"},{"vehicleDocumentId":"vd2","status":"ACTIVE"}]}
		],"currentPage":1,"totalPages":4,"totalCount":31}}`),
	})
	client, _ := newTestClient(t, fb, "tok")

	page, err := client.ListVehicles(context.Background(), VehicleQuery{SortBy: "brand", SortOrder: "ASC"})
	if err != nil {
		t.Fatalf("ListVehicles() error = %v", err)
	}
	query, _ := url.ParseQuery(fb.last(t).Query)
	if query.Get("sortBy") != "brand" || query.Get("sortOrder") != "ASC" || query.Get("pageNumber") != "1" {
		t.Fatalf("query = %v", query)
	}
	v := page.Items[0]
	if v.Year != "2021" || v.Owner == nil || v.Owner.CompanyName != "TT Logistics" {
		t.Fatalf("vehicle = %+v", v)
	}
	if len(v.Documents) != 2 || v.Documents[0].OwnerID != "v1" || v.Documents[0].OwnerName != "51H-123.45" {
		t.Fatalf("documents = %+v", v.Documents)
	}
	if page.TotalPages != 4 || !page.HasNextPage || page.HasPreviousPage {
		t.Fatalf("paging = %+v", page)
	}
}

func TestCatalogListings(t *testing.T) {
	t.Parallel()

	fb := newFakeBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET Item/get-all-items":        jsonReply(200, `{"isSuccess":true,"result":{"data":[{"itemId":1,"name":"Tủ lạnh","weight":45.5,"userId":"u1"}],"hasNextPage":true}}`),
		"GET Package/get-all-packages":  jsonReply(200, `{"isSuccess":true,"result":{"data":[{"packageId":"p1","name":"Kiện 1","weight":12}]}}`),
		"GET PostPackage/get-all":       jsonReply(200, `{"isSuccess":true,"result":{"data":[{"postPackageId":"pp1","title":"HCM-HN","providerId":"pr1","status":"OPEN"}]}}`),
		"GET ContractTemplate/getAll":   jsonReply(200, `{"isSuccess":true,"result":[{"contractTemplateId":"t1","contractTemplateName":"Provider","version":2,"type":"PROVIDER_CONTRACT"}]}`),
		"GET ContractTerm/getAll/t1":    jsonReply(200, `{"isSuccess":true,"result":[{"contractTermId":"c2","content":"B","order":2},{"contractTermId":"c1","content":"A","order":1}]}`),
	})
	client, _ := newTestClient(t, fb, "tok")
	ctx := context.Background()

	items, err := client.ListItems(ctx, PageRequest{})
	if err != nil || len(items.Items) != 1 || items.Items[0].ID != "1" || items.Items[0].Weight != "45.5" || !items.HasNextPage {
		t.Fatalf("ListItems() = %+v, %v", items, err)
	}
	packages, err := client.ListPackages(ctx, PageRequest{Number: 1})
	if err != nil || packages.Items[0].Weight != "12" || packages.Size != DefaultPageSize {
		t.Fatalf("ListPackages() = %+v, %v", packages, err)
	}
	posts, err := client.ListPostPackages(ctx, PageRequest{})
	if err != nil || posts.Items[0].Status != "OPEN" {
		t.Fatalf("ListPostPackages() = %+v, %v", posts, err)
	}
	templates, err := client.ListContractTemplates(ctx)
	if err != nil || len(templates) != 1 || templates[0].Version != "2" || templates[0].Type != "PROVIDER_CONTRACT" {
		t.Fatalf("ListContractTemplates() = %+v, %v", templates, err)
	}
	terms, err := client.ListContractTerms(ctx, "t1")
	if err != nil || len(terms) != 2 || terms[0].ID != "c1" {
		t.Fatalf("ListContractTerms() = %+v, %v", terms, err)
	}
}

func TestFinanceListings(t *testing.T) {
	t.Parallel()

	fb := newFakeBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"GET Transaction": jsonReply(200, `{"isSuccess":true,"result":{"items":[{"transactionId":"tx1","amount":-150000,"type":"PAYOUT","status":"COMPLETED"}],"currentPage":1,"totalPages":1}}`),
		"GET Wallets/my-wallet/history": jsonReply(200, `{"isSuccess":true,"result":{
			"walletInfo":{"walletId":"w1","balance":1250000},
			"transactions":{"items":[{"transactionId":"t1","type":"FEE","amount":50000,"balanceAfter":1250000,"tripId":"trip-7"}],
			"currentPage":2,"totalPages":3,"hasPreviousPage":true,"hasNextPage":true}}}`),
	})
	client, _ := newTestClient(t, fb, "tok")
	ctx := context.Background()

	txs, err := client.ListTransactions(ctx, PageRequest{})
	if err != nil || len(txs.Items) != 1 || txs.Items[0].Amount != -150000 || txs.HasNextPage {
		t.Fatalf("ListTransactions() = %+v, %v", txs, err)
	}
	history, err := client.PlatformWallet(ctx, PageRequest{Number: 2})
	if err != nil {
		t.Fatalf("PlatformWallet() error = %v", err)
	}
	if history.Wallet.ID != "w1" || history.Wallet.Balance != 1250000 {
		t.Fatalf("wallet = %+v", history.Wallet)
	}
	line := history.Transactions.Items[0]
	if line.BalanceAfter != 1250000 || line.TripID != "trip-7" || history.Transactions.Number != 2 {
		t.Fatalf("ledger = %+v", history.Transactions)
	}
}

func TestPageRequestNormalize(t *testing.T) {
	t.Parallel()

	got := PageRequest{Number: -1, Size: 500}.Normalize()
	if got.Number != 1 || got.Size != 100 {
		t.Fatalf("Normalize() = %+v", got)
	}
}
