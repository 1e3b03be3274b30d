package service

import "sabor-do-para/internal/domain"

// Menu categories in display order.
var Categories = []string{"lanches", "bebidas", "porcoes", "sobremesas"}

// DefaultMenu is the starter menu seeded into an empty deployment.
func DefaultMenu() []domain.Product {
	return []domain.Product{
		{Name: "X-Burguer Especial", Description: "Hambúrguer artesanal 180g, queijo cheddar, bacon crocante e molho especial", Price: 28.90, Category: "lanches", Available: true},
		{Name: "X-Tudo Paraense", Description: "Hambúrguer 200g, queijo, presunto, ovo, bacon, alface, tomate e tucupi", Price: 35.90, Category: "lanches", Available: true},
		{Name: "Sanduíche de Filé", Description: "Filé mignon grelhado, queijo provolone derretido e cebola caramelizada", Price: 32.90, Category: "lanches", Available: true},
		{Name: "X-Salada", Description: "Hambúrguer 150g, queijo, alface, tomate e maionese caseira", Price: 22.90, Category: "lanches", Available: true},
		{Name: "Suco de Açaí", Description: "Suco natural de açaí da região, 400ml", Price: 12.90, Category: "bebidas", Available: true},
		{Name: "Guaraná Jesus", Description: "Refrigerante regional, lata 350ml", Price: 6.90, Category: "bebidas", Available: true},
		{Name: "Refrigerante", Description: "Coca-Cola, Guaraná ou Fanta - Lata 350ml", Price: 5.90, Category: "bebidas", Available: true},
		{Name: "Água Mineral", Description: "Água mineral sem gás 500ml", Price: 3.90, Category: "bebidas", Available: true},
		{Name: "Batata Frita", Description: "Porção generosa de batata frita crocante com sal e orégano", Price: 18.90, Category: "porcoes", Available: true},
		{Name: "Mandioca Frita", Description: "Mandioca frita sequinha, típica da região", Price: 16.90, Category: "porcoes", Available: true},
		{Name: "Onion Rings", Description: "Anéis de cebola empanados e fritos", Price: 19.90, Category: "porcoes", Available: true},
		{Name: "Mix de Petiscos", Description: "Batata, mandioca e onion rings", Price: 32.90, Category: "porcoes", Available: true},
		{Name: "Pudim de Cupuaçu", Description: "Pudim cremoso de cupuaçu com calda de caramelo", Price: 14.90, Category: "sobremesas", Available: true},
		{Name: "Açaí na Tigela", Description: "Açaí batido com banana, granola, leite em pó e mel", Price: 18.90, Category: "sobremesas", Available: true},
		{Name: "Brownie com Sorvete", Description: "Brownie de chocolate quente com sorvete de creme", Price: 16.90, Category: "sobremesas", Available: true},
	}
}
