package retail

// DefaultSchemas returns the column definitions used by setup when the
// configuration declares no table_schemas. No primary keys are declared:
// retained customers repeat their id and every load appends.
func DefaultSchemas() map[string][]string {
	return map[string][]string{
		TableProduct: {
			"Product_ID TEXT NOT NULL",
			"Product_Name TEXT",
			"Brand_Name TEXT",
			"Category TEXT",
			"Subcategory TEXT",
			"Price DOUBLE PRECISION",
			"Cost DOUBLE PRECISION",
			"Supplier_ID TEXT",
		},
		TableStore: {
			"Store_ID TEXT NOT NULL",
			"Store_Location TEXT",
			"Store_Size DOUBLE PRECISION",
			"Store_Type TEXT",
		},
		TableCustomer: {
			"Customer_ID TEXT NOT NULL",
			"First_Name TEXT",
			"Last_Name TEXT",
			"Email TEXT",
			"Phone TEXT",
			"Address TEXT",
			"City TEXT",
			"State TEXT",
			"Zip_Code TEXT",
			"Customer_Join_Date DATE",
			"DOB DATE",
			"Gender TEXT",
		},
		TableTime: {
			"Date DATE NOT NULL",
			"Day_of_Week TEXT",
			"Week_of_Year INTEGER",
			"Month TEXT",
			"Quarter TEXT",
			"Year INTEGER",
		},
		TableSales: {
			"Transaction_ID TEXT NOT NULL",
			"Product_ID TEXT",
			"Store_ID TEXT",
			"Customer_ID TEXT",
			"Date DATE",
			"Quantity_Sold INTEGER",
			"Sales_Amount DOUBLE PRECISION",
		},
		TableSupplier: {
			"Supplier_ID TEXT NOT NULL",
			"Supplier_Name TEXT",
			"Contact_Number TEXT",
			"Email TEXT",
			"Lead_Time_Days INTEGER",
		},
		TableFeedback: {
			"Feedback_ID TEXT NOT NULL",
			"Product_ID TEXT",
			"Customer_ID TEXT",
			"Date DATE",
			"Feedback_Text TEXT",
			"Feedback_Rating INTEGER",
		},
		TableLoyalty: {
			"Loyalty_ID TEXT NOT NULL",
			"Customer_ID TEXT",
			"Points_Earned DOUBLE PRECISION",
			"Points_Redeemed BIGINT",
			"Membership_Tier TEXT",
		},
	}
}
