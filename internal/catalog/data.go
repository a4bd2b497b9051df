package catalog

// Static menu data. Prices are currency-agnostic amounts.

var ingredients = []Ingredient{
	// Breads
	{ID: "i1", Name: "Pão Brioche", Price: 0, Category: IngredientBread},
	{ID: "i2", Name: "Pão Australiano", Price: 2.00, Category: IngredientBread},
	{ID: "i3", Name: "Pão com Gergelim", Price: 0, Category: IngredientBread},

	// Meats
	{ID: "i4", Name: "Blend Bovino 180g", Price: 15.00, Category: IngredientMeat},
	{ID: "i5", Name: "Carne Smash 90g", Price: 9.00, Category: IngredientMeat},
	{ID: "i6", Name: "Burger de Grão de Bico", Price: 12.00, Category: IngredientMeat},

	// Cheeses
	{ID: "i7", Name: "Cheddar Inglês", Price: 4.00, Category: IngredientCheese},
	{ID: "i8", Name: "Mussarela", Price: 3.00, Category: IngredientCheese},
	{ID: "i9", Name: "Gorgonzola", Price: 5.50, Category: IngredientCheese},

	// Salads
	{ID: "i10", Name: "Alface Americana", Price: 1.00, Category: IngredientSalad},
	{ID: "i11", Name: "Tomate", Price: 1.00, Category: IngredientSalad},
	{ID: "i12", Name: "Cebola Roxa", Price: 1.00, Category: IngredientSalad},
	{ID: "i13", Name: "Picles", Price: 2.00, Category: IngredientSalad},

	// Extras
	{ID: "i14", Name: "Bacon Crocante", Price: 5.00, Category: IngredientExtra},
	{ID: "i15", Name: "Ovo Frito", Price: 3.00, Category: IngredientExtra},
	{ID: "i16", Name: "Cebola Caramelizada", Price: 4.00, Category: IngredientExtra},
	{ID: "i17", Name: "Dobro de Carne", Price: 12.00, Category: IngredientExtra},

	// Sauces
	{ID: "i18", Name: "Maionese da Casa", Price: 0, Category: IngredientSauce},
	{ID: "i19", Name: "Barbecue Defumado", Price: 2.00, Category: IngredientSauce},
	{ID: "i20", Name: "Molho Spicy", Price: 2.00, Category: IngredientSauce},
}

var products = []Product{
	// Burgers
	{
		ID:          "b1",
		Name:        "O Clássico IA",
		Description: "180g de angus negro, cheddar maturado, cebolas caramelizadas e nosso molho tech secreto.",
		Price:       38.00,
		Image:       "https://images.unsplash.com/photo-1550547660-d9450f859349?auto=format&fit=crop&q=80&w=800",
		Category:    CategoryGourmet,
	},
	{
		ID:          "b2",
		Name:        "Protocolo Smash",
		Description: "Hambúrguer duplo de 90g com crosta, queijo americano, picles e mostarda.",
		Price:       32.00,
		Image:       "https://images.unsplash.com/photo-1572802419224-296b0aeee0d9?auto=format&fit=crop&q=80&w=800",
		Category:    CategorySmash,
	},
	{
		ID:          "b3",
		Name:        "Matrix de Bacon",
		Description: "Bacon triplamente defumado, mel, cebolas crocantes e queijo jack.",
		Price:       42.00,
		Image:       "https://images.unsplash.com/photo-1553979459-d2229ba7433b?auto=format&fit=crop&q=80&w=800",
		Category:    CategoryGourmet,
	},
	{
		ID:          "b4",
		Name:        "Mega Byte",
		Description: "Quatro carnes smash de 60g, muito cheddar, bacon bits e molho barbecue.",
		Price:       48.00,
		Image:       "https://images.unsplash.com/photo-1586190848861-99aa4a171e90?auto=format&fit=crop&q=80&w=800",
		Category:    CategorySmash,
	},
	{
		ID:          "b5",
		Name:        "Firewall Spicy",
		Description: "Blend bovino, queijo pepper jack, jalapeños defumados e maionese de sriracha.",
		Price:       36.00,
		Image:       "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?auto=format&fit=crop&q=80&w=800",
		Category:    CategoryClassic,
	},
	{
		ID:          "b6",
		Name:        "Cloud Veggie",
		Description: "Hambúrguer de grão de bico, cogumelos, rúcula e creme de tofu com ervas.",
		Price:       34.00,
		Image:       "https://images.unsplash.com/photo-1525059696034-4967a8e1dca2?auto=format&fit=crop&q=80&w=800",
		Category:    CategoryClassic,
	},
	{
		ID:          "b7",
		Name:        "Binary Barbecue",
		Description: "Blend bovino 200g, queijo cheddar, bacon, molho barbecue e cebola crispy.",
		Price:       40.00,
		Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?auto=format&fit=crop&q=80&w=800",
		Category:    CategoryGourmet,
	},
	{
		ID:          "b8",
		Name:        "Chicken Code",
		Description: "Filé de frango empanado, maionese temperada, alface e tomate.",
		Price:       28.00,
		Image:       "https://images.unsplash.com/photo-1606755962773-d324e0a13086?auto=format&fit=crop&q=80&w=800",
		Category:    CategoryClassic,
	},

	// Snacks
	{
		ID:          "s_n1",
		Name:        "Coxinha Tech",
		Description: "Massa de batata ultra cremosa com recheio de frango defumado e catupiry.",
		Price:       8.50,
		Image:       "https://images.unsplash.com/photo-1626804475297-41608ea09aeb?auto=format&fit=crop&q=80&w=800",
		Category:    CategorySnacks,
	},
	{
		ID:          "s_n2",
		Name:        "Kibe de Cripto",
		Description: "Kibe tradicional frito na hora, recheado com carne e hortelã fresca.",
		Price:       8.00,
		Image:       "https://images.unsplash.com/photo-1599487488170-d11ec9c172f0?auto=format&fit=crop&q=80&w=800",
		Category:    CategorySnacks,
	},
	{
		ID:          "s_n3",
		Name:        "Enroladinho de Presunto",
		Description: "Massa leve com presunto, mussarela e orégano.",
		Price:       7.50,
		Image:       "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?auto=format&fit=crop&q=80&w=800",
		Category:    CategorySnacks,
	},
	{
		ID:          "s_n4",
		Name:        "Empada de Palmito",
		Description: "Massa podre que derrete na boca com recheio cremoso de palmito.",
		Price:       9.00,
		Image:       "https://images.unsplash.com/photo-1509042239860-f550ce710b93?auto=format&fit=crop&q=80&w=800",
		Category:    CategorySnacks,
	},

	// Sides
	{
		ID:          "s1",
		Name:        "Batata Rústica",
		Description: "Batatas rústicas temperadas com alecrim e sal grosso.",
		Price:       18.00,
		Image:       "https://images.unsplash.com/photo-1518013431117-eb1465fa5752?auto=format&fit=crop&q=80&w=800",
		Category:    CategorySides,
	},
	{
		ID:          "s2",
		Name:        "Onion Rings Binary",
		Description: "Anéis de cebola empanados em panko com páprica defumada.",
		Price:       22.00,
		Image:       "https://images.unsplash.com/photo-1569058242253-92a9c755a0ec?auto=format&fit=crop&q=80&w=800",
		Category:    CategorySides,
	},
	{
		ID:          "s3",
		Name:        "Nuggets Tech",
		Description: "Nuggets de frango crocantes servidos com molho especial.",
		Price:       16.00,
		Image:       "https://images.unsplash.com/photo-1562967914-608f82629710?auto=format&fit=crop&q=80&w=800",
		Category:    CategorySides,
	},
	{
		ID:          "s4",
		Name:        "Mandioca Frita",
		Description: "Mandioca crocante por fora e macia por dentro.",
		Price:       15.00,
		Image:       "https://images.unsplash.com/photo-1585937421612-70a008356fbe?auto=format&fit=crop&q=80&w=800",
		Category:    CategorySides,
	},

	// Drinks
	{
		ID:          "d1",
		Name:        "Limonada Neon",
		Description: "Limonada fresca com um toque de chá de clitória (butterfly pea tea).",
		Price:       12.00,
		Image:       "https://images.unsplash.com/photo-1582610116397-edb318620f90?auto=format&fit=crop&q=80&w=800",
		Category:    CategoryDrinks,
	},
	{
		ID:          "d2",
		Name:        "Suco de Laranja Real",
		Description: "100% natural, espremido na hora. Sem adição de açúcar.",
		Price:       10.00,
		Image:       "https://images.unsplash.com/photo-1600271886742-f049cd451bba?auto=format&fit=crop&q=80&w=800",
		Category:    CategoryDrinks,
	},
	{
		ID:          "d3",
		Name:        "Abacaxi com Hortelã",
		Description: "Refrescante e digestivo, perfeito para acompanhar seu burger.",
		Price:       11.00,
		Image:       "https://images.unsplash.com/photo-1589820296156-2454bb8a6ad1?auto=format&fit=crop&q=80&w=800",
		Category:    CategoryDrinks,
	},
	{
		ID:          "d4",
		Name:        "Pink Lemonade",
		Description: "Limonada com frutas vermelhas e gelo picado.",
		Price:       14.00,
		Image:       "https://images.unsplash.com/photo-1623065422902-30a2d299bbe4?auto=format&fit=crop&q=80&w=800",
		Category:    CategoryDrinks,
	},
	{
		ID:          "d5",
		Name:        "Milkshake de Chocolate",
		Description: "Cremoso milkshake de chocolate com chantilly.",
		Price:       16.00,
		Image:       "https://images.unsplash.com/photo-1572490122747-3968b75cc699?auto=format&fit=crop&q=80&w=800",
		Category:    CategoryDrinks,
	},
	{
		ID:          "d6",
		Name:        "Refrigerante",
		Description: "Coca-Cola, Guaraná ou Sprite 350ml.",
		Price:       6.00,
		Image:       "https://images.unsplash.com/photo-1581006852262-e4307cf6283a?auto=format&fit=crop&q=80&w=800",
		Category:    CategoryDrinks,
	},
	{
		ID:          "d7",
		Name:        "Água de Coco",
		Description: "Água de coco natural gelada.",
		Price:       8.00,
		Image:       "https://images.unsplash.com/photo-1525385133512-2f3bdd039054?auto=format&fit=crop&q=80&w=800",
		Category:    CategoryDrinks,
	},
}
