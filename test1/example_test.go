package example_test

import (
	"fmt"
	"time"

	"mapping-verifier/store"
	"mapping-verifier/verify"
)

// Example verifies the store-to-warehouse order mapper end to end: it
// learns which source field feeds which target field, checks every
// learned pair against the full value ranges and prints the summary.
func Example() {
	v := verify.For(store.ToWarehouseOrder).
		IgnoreTargetFields("SyncedAt").
		Enum(store.StatusDraft, store.StatusPaid, store.StatusShipped, store.StatusCancelled).
		Converter(func(id int64) uint { return uint(id) }).
		Converter(store.StatusLabel).
		Converter(store.ToWarehouseLine).
		TestValuesForType(
			store.Line{ProductID: 1, Title: "Blue mug", Count: 2, CentsEach: 499},
			store.Line{ProductID: 1, Title: "Blue mug", Count: 2, CentsEach: 499},
			store.Line{ProductID: 2, Title: "Red mug", Count: 1, CentsEach: 599},
		)

	err := v.Verify(func() store.Order {
		return store.Order{
			ID:         7,
			CustomerID: 21,
			Status:     store.StatusPaid,
			GrandCents: 998,
			Lines: []store.Line{
				{ProductID: 3, Title: "Green mug", Count: 1, CentsEach: 998},
			},
			CheckedOut: time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC),
		}
	})
	if err != nil {
		fmt.Println("verification failed:", err)
		return
	}

	fmt.Print(v.Report())

	// Output:
	// mappings: 6, checked values: 25
	//   ID --> ID
	//   CustomerID --> CustomerID
	//   Status --> Status
	//   GrandCents --> GrandTotal
	//   Lines --> Lines
	//   CheckedOut --> PlacedAt
	// ignored target fields: SyncedAt
}
